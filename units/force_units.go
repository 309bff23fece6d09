// SPDX-License-Identifier: MIT

package units

import "github.com/katalvlaran/lvunits/quantity"

// newtonsPerPoundForce is one avoirdupois pound under standard gravity.
const newtonsPerPoundForce = 4.4482216152605

var (
	newtonsDef        = quantity.Define[Force]("N", quantity.Linear(1))
	dynesDef          = quantity.Define[Force]("dyn", quantity.Linear(1e-5))
	kilogramsForceDef = quantity.Define[Force]("kgf", quantity.Linear(9.80665))
	poundsForceDef    = quantity.Define[Force]("lbf", quantity.Linear(newtonsPerPoundForce))
)

type (
	// NewtonsUnit views a force in newtons (N).
	NewtonsUnit struct{}

	// DynesUnit views a force in dynes (dyn).
	DynesUnit struct{}

	// KilogramsForceUnit views a force in kilograms force (kgf).
	KilogramsForceUnit struct{}

	// PoundsForceUnit views a force in pounds force (lbf).
	PoundsForceUnit struct{}
)

func (NewtonsUnit) Def() quantity.Def[Force] { return newtonsDef }
func (DynesUnit) Def() quantity.Def[Force] { return dynesDef }
func (KilogramsForceUnit) Def() quantity.Def[Force] { return kilogramsForceDef }
func (PoundsForceUnit) Def() quantity.Def[Force] { return poundsForceDef }

// Newtons returns x newtons.
func Newtons(x float64) quantity.View[Force, NewtonsUnit] {
	return quantity.Make[Force, NewtonsUnit](x)
}

// NewtonsOf views f in newtons.
func NewtonsOf(f Force) quantity.View[Force, NewtonsUnit] {
	return quantity.ViewOf[NewtonsUnit](f)
}

// Dynes returns x dynes.
func Dynes(x float64) quantity.View[Force, DynesUnit] {
	return quantity.Make[Force, DynesUnit](x)
}

// DynesOf views f in dynes.
func DynesOf(f Force) quantity.View[Force, DynesUnit] {
	return quantity.ViewOf[DynesUnit](f)
}

// KilogramsForce returns x kilograms force.
func KilogramsForce(x float64) quantity.View[Force, KilogramsForceUnit] {
	return quantity.Make[Force, KilogramsForceUnit](x)
}

// KilogramsForceOf views f in kilograms force.
func KilogramsForceOf(f Force) quantity.View[Force, KilogramsForceUnit] {
	return quantity.ViewOf[KilogramsForceUnit](f)
}

// PoundsForce returns x pounds force.
func PoundsForce(x float64) quantity.View[Force, PoundsForceUnit] {
	return quantity.Make[Force, PoundsForceUnit](x)
}

// PoundsForceOf views f in pounds force.
func PoundsForceOf(f Force) quantity.View[Force, PoundsForceUnit] {
	return quantity.ViewOf[PoundsForceUnit](f)
}
