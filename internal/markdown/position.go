package markdown

// PositionMap provides bidirectional mapping between original and converted
// rune positions
type PositionMap struct {
	// Indexed by original rune position, one extra entry for the end
	origToConverted []int
	// Indexed by converted rune position, one extra entry for the end
	convertedToOrig []int
}

func newPositionMap(inputLen int) *PositionMap {
	pm := &PositionMap{
		origToConverted: make([]int, inputLen+1),
		convertedToOrig: make([]int, 0, inputLen+1),
	}
	for i := range pm.origToConverted {
		pm.origToConverted[i] = -1
	}
	return pm
}

// record notes that original rune orig was written at converted position conv.
// Calls must be made in increasing conv order.
func (pm *PositionMap) record(orig, conv int) {
	pm.origToConverted[orig] = conv
	pm.convertedToOrig = append(pm.convertedToOrig, orig)
}

// finish fills in the positions of removed runes. They map to the converted
// position of the next rune that survived.
func (pm *PositionMap) finish(convertedLen int) {
	last := len(pm.origToConverted) - 1
	pm.origToConverted[last] = convertedLen
	for i := last - 1; i >= 0; i-- {
		if pm.origToConverted[i] < 0 {
			pm.origToConverted[i] = pm.origToConverted[i+1]
		}
	}
	pm.convertedToOrig = append(pm.convertedToOrig, last)
}

// OriginalToConverted maps a position from original text to converted text
func (pm *PositionMap) OriginalToConverted(pos int) int {
	return lookup(pm.origToConverted, pos)
}

// ConvertedToOriginal maps a position from converted text to original text
func (pm *PositionMap) ConvertedToOriginal(pos int) int {
	return lookup(pm.convertedToOrig, pos)
}

// MapPositions maps an array of positions from original to converted text
func (pm *PositionMap) MapPositions(positions []int) []int {
	mapped := make([]int, len(positions))
	for i, pos := range positions {
		mapped[i] = pm.OriginalToConverted(pos)
	}
	return mapped
}

// lookup clamps out of range positions to the ends of the table
func lookup(table []int, pos int) int {
	if len(table) == 0 {
		return 0
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= len(table) {
		pos = len(table) - 1
	}
	return table[pos]
}
