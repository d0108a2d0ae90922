package railroad

// Start is the left cap of a railroad diagram.
//
//	START╟───
type Start struct{}

func (Start) EntryHeight() int { return 0 }
func (Start) Height() int      { return 1 }
func (Start) Width() int       { return 6 }

func (Start) Draw() []string {
	return []string{"START" + string(symStart)}
}

// End is the right cap of a railroad diagram.
//
//	───╢END
type End struct{}

func (End) EntryHeight() int { return 0 }
func (End) Height() int      { return 1 }
func (End) Width() int       { return 4 }

func (End) Draw() []string {
	return []string{string(symEnd) + "END"}
}
