package yamlbook

// Moves sorts by weight, then mates (shortest win first, longest loss last),
// then centipawns.
type Moves []*Move

func (m Moves) Less(i, j int) bool {
	if m[i].Weight != m[j].Weight {
		return m[i].Weight > m[j].Weight
	}

	if m[i].Mate != 0 && m[j].Mate != 0 {
		return m[i].Mate < m[j].Mate
	}
	if m[i].Mate != 0 || m[j].Mate != 0 {
		return m[i].Mate > m[j].Mate
	}

	return m[i].CP > m[j].CP
}

func (m Moves) Swap(i, j int) {
	m[i], m[j] = m[j], m[i]
}

func (m Moves) Len() int {
	return len(m)
}

func (m Moves) ContainsSAN(san string) bool {
	return m.GetSAN(san) != nil
}

func (m Moves) GetSAN(san string) *Move {
	for _, move := range m {
		if move.Move == san {
			return move
		}
	}
	return nil
}

func (m Moves) GetBestMoveByEval(preferUCI string) *Move {
	var bestMove *Move
	for _, move := range m {
		if bestMove == nil {
			bestMove = move
			continue
		}

		if move.Mate == bestMove.Mate && move.CP == bestMove.CP {
			if uci, err := move.UCI(); err == nil && uci == preferUCI {
				bestMove = move
			}
			continue
		}

		if move.Mate > bestMove.Mate {
			bestMove = move
			continue
		}

		if move.Mate == 0 && bestMove.Mate == 0 && move.CP > bestMove.CP {
			bestMove = move
			continue
		}
	}

	return bestMove
}

func (m Moves) UCIs() ([]string, error) {
	ucis := make([]string, 0, len(m))
	for _, move := range m {
		uci, err := move.UCI()
		if err != nil {
			return nil, err
		}
		ucis = append(ucis, uci)
	}
	return ucis, nil
}
