package chess

// LegalDestinations collects every square the piece on from may legally
// move to, by probing all 64 squares through IsLegal. Destinations come
// back in row major order. At board size 8 the brute force probe is
// plenty fast.
func LegalDestinations(b Board, turn Color, from Square) []Square {
	var dests []Square
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			to := Square{Row: row, Col: col}
			if IsLegal(b, turn, from, to) {
				dests = append(dests, to)
			}
		}
	}
	return dests
}
