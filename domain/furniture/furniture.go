// Package furniture contains the product families of the showroom.
// Each family (chair, sofa) has one implementation per variant, and a
// factory per variant guarantees that both products it hands out belong
// to the same family.
package furniture

// Chair is the base contract of the chair family. All variants of the
// product implement it.
type Chair interface {
	CanSit() string
}

// Sofa is the base contract of the sofa family. A sofa can do its own
// thing (CanSleep) and can also collaborate with a chair. Proper
// interaction is only guaranteed between products of the same variant;
// the collaborator is typed by capability, not by variant, so a
// mismatched pairing is accepted and simply names the foreign variant
// in its output.
type Sofa interface {
	CanSleep() string
	CanSit(collaborator Chair) string
}

// FurnitureFactory declares the creation operations of one product
// family variant. Signatures return the abstract products while the
// concrete factories instantiate their own variant, so client code
// never names a concrete type.
type FurnitureFactory interface {
	CreateChair() Chair
	CreateSofa() Sofa
}
