package conversion

const (
	// pointBuyFloor is deducted from the raw ability total.
	pointBuyFloor = 50
	// wellOffDeduction is the share of the total a well-off background costs.
	wellOffDeduction = 0.05
	// baselineDivisor scales the remaining points to a characteristic.
	baselineDivisor = 10
)

// ComputeBaseline derives the target baseline ("original CPRS") from the
// sum of the nine raw ability values. The result is not rounded.
func ComputeBaseline(totalRawSum float64, isWellOff bool) float64 {
	if isWellOff {
		return (totalRawSum - wellOffDeduction*totalRawSum - pointBuyFloor) / baselineDivisor
	}
	return (totalRawSum - pointBuyFloor) / baselineDivisor
}

// BuildCharacteristics scales every CSR by the baseline.
func BuildCharacteristics(csr []float64, baseline float64) []float64 {
	out := make([]float64, len(csr))
	for i, ratio := range csr {
		out[i] = ratio * baseline
	}
	return out
}
