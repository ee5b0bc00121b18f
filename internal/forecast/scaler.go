package forecast

// MinMaxScaler maps each column onto [0, 1] using the range seen in Fit.
type MinMaxScaler struct {
	Min []float64
	Max []float64
}

// Fit records the per-column range of rows.
func (s *MinMaxScaler) Fit(rows [][]float64) {
	if len(rows) == 0 {
		return
	}
	cols := len(rows[0])
	s.Min = make([]float64, cols)
	s.Max = make([]float64, cols)
	copy(s.Min, rows[0])
	copy(s.Max, rows[0])
	for _, row := range rows[1:] {
		for j, v := range row {
			if v < s.Min[j] {
				s.Min[j] = v
			}
			if v > s.Max[j] {
				s.Max[j] = v
			}
		}
	}
}

// Transform scales rows into a new slice. Constant columns scale to 0.
func (s *MinMaxScaler) Transform(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = s.Scale(v, j)
		}
		out[i] = scaled
	}
	return out
}

// Scale maps one value of column col.
func (s *MinMaxScaler) Scale(v float64, col int) float64 {
	span := s.Max[col] - s.Min[col]
	if span == 0 {
		return 0
	}
	return (v - s.Min[col]) / span
}

// Inverse maps a scaled value of column col back to its original units.
func (s *MinMaxScaler) Inverse(v float64, col int) float64 {
	return v*(s.Max[col]-s.Min[col]) + s.Min[col]
}
