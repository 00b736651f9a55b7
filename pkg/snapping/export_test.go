package snapping

func (s *CellSnapper) Indexed() bool {
	return s.tree != nil
}
