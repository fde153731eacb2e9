package trigger

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registry", func() {
	var (
		registry *Registry
		noop     Action
	)

	BeforeEach(func() {
		registry = NewRegistry()
		noop = ActionFunc(func(ctx ActionCtx) error { return nil })
	})

	It("should register an action and return an entry ID", func() {
		id, err := registry.Register("target", noop, PlacementBefore)

		Expect(err).NotTo(HaveOccurred())
		Expect(id).NotTo(BeEmpty())

		entries := registry.Lookup("target", PlacementBefore)
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].ID).To(Equal(id))
	})

	It("should keep duplicated registrations as distinct entries", func() {
		id1, err := registry.Register("target", noop, PlacementBefore)
		Expect(err).NotTo(HaveOccurred())

		id2, err := registry.Register("target", noop, PlacementBefore)
		Expect(err).NotTo(HaveOccurred())

		Expect(id1).NotTo(Equal(id2))
		Expect(registry.Lookup("target", PlacementBefore)).To(HaveLen(2))
	})

	It("should reject an unknown placement", func() {
		elsewhere := &Placement{Name: "Elsewhere"}

		_, err := registry.Register("target", noop, elsewhere)

		Expect(err).To(MatchError(ErrInvalidPlacement))
	})

	It("should reject a nil placement", func() {
		_, err := registry.Register("target", noop, nil)

		Expect(err).To(MatchError(ErrInvalidPlacement))
	})

	It("should reject a nil action", func() {
		_, err := registry.Register("target", nil, PlacementBefore)

		Expect(err).To(MatchError(ErrNilAction))
	})

	It("should reject an empty target name", func() {
		_, err := registry.Register("", noop, PlacementBefore)

		Expect(err).To(MatchError(ErrEmptyTargetName))
	})

	It("should preserve registration order in lookups", func() {
		id1, _ := registry.Register("target", noop, PlacementBefore)
		id2, _ := registry.Register("target", noop, PlacementBefore)
		id3, _ := registry.Register("target", noop, PlacementBefore)

		entries := registry.Lookup("target", PlacementBefore)

		Expect(entries).To(HaveLen(3))
		Expect(entries[0].ID).To(Equal(id1))
		Expect(entries[1].ID).To(Equal(id2))
		Expect(entries[2].ID).To(Equal(id3))
	})

	It("should return equal results from repeated lookups", func() {
		registry.Register("target", noop, PlacementBefore)
		registry.Register("target", noop, PlacementBefore)

		first := registry.Lookup("target", PlacementBefore)
		second := registry.Lookup("target", PlacementBefore)

		Expect(second).To(Equal(first))
	})

	It("should only return entries for the requested placement", func() {
		beforeID, _ := registry.Register("target", noop, PlacementBefore)
		registry.Register("target", noop, PlacementAfter)

		entries := registry.Lookup("target", PlacementBefore)

		Expect(entries).To(HaveLen(1))
		Expect(entries[0].ID).To(Equal(beforeID))
	})

	It("should return nothing for an unregistered target", func() {
		Expect(registry.Lookup("nobody", PlacementBefore)).To(BeEmpty())
	})

	It("should unregister a single entry by ID", func() {
		id1, _ := registry.Register("target", noop, PlacementBefore)
		id2, _ := registry.Register("target", noop, PlacementBefore)

		Expect(registry.Unregister("target", id1)).To(BeTrue())

		entries := registry.Lookup("target", PlacementBefore)
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].ID).To(Equal(id2))
	})

	It("should report failure to unregister an unknown entry", func() {
		Expect(registry.Unregister("target", "no-such-id")).To(BeFalse())
	})

	It("should unregister all entries for a target", func() {
		registry.Register("target", noop, PlacementBefore)
		registry.Register("target", noop, PlacementAfter)
		registry.Register("other", noop, PlacementBefore)

		Expect(registry.UnregisterAll("target")).To(Equal(2))
		Expect(registry.Lookup("target", PlacementBefore)).To(BeEmpty())
		Expect(registry.Lookup("other", PlacementBefore)).To(HaveLen(1))
	})

	It("should attach one action to multiple targets", func() {
		ids, err := registry.Attach(noop, PlacementBefore, "t1", "t2", "t3")

		Expect(err).NotTo(HaveOccurred())
		Expect(ids).To(HaveLen(3))
		Expect(registry.Lookup("t1", PlacementBefore)).To(HaveLen(1))
		Expect(registry.Lookup("t2", PlacementBefore)).To(HaveLen(1))
		Expect(registry.Lookup("t3", PlacementBefore)).To(HaveLen(1))
	})

	It("should not attach to any target when one name is empty", func() {
		_, err := registry.Attach(noop, PlacementBefore, "t1", "")

		Expect(err).To(MatchError(ErrEmptyTargetName))
		Expect(registry.Lookup("t1", PlacementBefore)).To(BeEmpty())
	})

	It("should hide entries while suspended", func() {
		registry.Register("target", noop, PlacementBefore)

		resume := registry.Suspend()
		Expect(registry.Lookup("target", PlacementBefore)).To(BeEmpty())

		resume()
		Expect(registry.Lookup("target", PlacementBefore)).To(HaveLen(1))
	})

	It("should stay suspended until every nested resume has run", func() {
		registry.Register("target", noop, PlacementBefore)

		resumeOuter := registry.Suspend()
		resumeInner := registry.Suspend()

		resumeInner()
		Expect(registry.Lookup("target", PlacementBefore)).To(BeEmpty())

		resumeOuter()
		Expect(registry.Lookup("target", PlacementBefore)).To(HaveLen(1))
	})

	It("should tolerate a resume function running twice", func() {
		registry.Register("target", noop, PlacementBefore)

		resume := registry.Suspend()
		resume()
		resume()

		Expect(registry.Lookup("target", PlacementBefore)).To(HaveLen(1))
	})
})
