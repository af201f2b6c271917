package furniture

import "fmt"

type ClassicalChair struct{}

func (c ClassicalChair) CanSit() string {
	return "You can sit on it from Classical Chair"
}

type ClassicalSofa struct{}

func (s ClassicalSofa) CanSleep() string {
	return "you can sleep from Classical sofa"
}

// CanSit embeds the collaborator's own answer. The wording (including
// the historical misspelling) is kept verbatim from the reference
// sentences the tests pin down.
func (s ClassicalSofa) CanSit(collaborator Chair) string {
	return fmt.Sprintf("You can sit on it from Classical sofa, with collabortaor (%s)", collaborator.CanSit())
}

// ClassicalFurniture produces the classical variant of every product.
type ClassicalFurniture struct{}

func (f ClassicalFurniture) CreateChair() Chair {
	return ClassicalChair{}
}

func (f ClassicalFurniture) CreateSofa() Sofa {
	return ClassicalSofa{}
}
