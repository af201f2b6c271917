package furniture

import "fmt"

type ModernChair struct{}

func (c ModernChair) CanSit() string {
	return "You can sit on it from Modern Chair"
}

type ModernSofa struct{}

func (s ModernSofa) CanSleep() string {
	return "You can sleep from Modern sofa"
}

func (s ModernSofa) CanSit(collaborator Chair) string {
	return fmt.Sprintf("You can sit on it from Modern sofa, with collaborator (%s)", collaborator.CanSit())
}

// ModernFurniture produces the modern variant of every product.
type ModernFurniture struct{}

func (f ModernFurniture) CreateChair() Chair {
	return ModernChair{}
}

func (f ModernFurniture) CreateSofa() Sofa {
	return ModernSofa{}
}
