package physics

// BohrMagneton in joules per tesla.
const BohrMagneton = 9.274e-24

// Shift returns the Zeeman energy shift in joules for a state with Landé
// factor g and magnetic quantum number mj in a field of b tesla.
func Shift(g, mj, b float64) float64 {
	return BohrMagneton * g * mj * b
}
