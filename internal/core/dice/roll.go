package dice

// RollWithRng rolls every spec in order from rng.
//
// Result.Rolls keeps the spec order. Each Roll.Total is the sum of its
// Results and Result.Total is the sum of every die rolled. ErrInvalidDiceSpec
// is returned for any spec with non-positive Sides or Count.
func RollWithRng(rng Roller, specs []Spec) (Result, error) {
	if rng == nil {
		return Result{}, ErrMissingRoller
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0
	for _, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 {
			return Result{}, ErrInvalidDiceSpec
		}

		results := make([]int, spec.Count)
		rollTotal := 0
		for i := range results {
			results[i] = rollDie(rng, spec.Sides)
			rollTotal += results[i]
		}

		rolls = append(rolls, Roll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}

// RollRange returns a uniform integer in [min, max], inclusive of both.
func RollRange(rng Roller, min, max int) (int, error) {
	if rng == nil {
		return 0, ErrMissingRoller
	}
	if max < min {
		return 0, ErrInvalidRange
	}
	return rng.Intn(max-min+1) + min, nil
}

// DropLowest is the outcome of rolling a pool and discarding its lowest die.
type DropLowest struct {
	Rolls   []int // every die in roll order
	Dropped int   // value of the discarded die
	Total   int   // sum of the kept dice
}

// RollDropLowest rolls count dice with the given sides, discards exactly
// one die showing the minimum (the first one rolled when several tie) and
// sums the rest. Count must be at least two.
func RollDropLowest(rng Roller, count, sides int) (DropLowest, error) {
	if rng == nil {
		return DropLowest{}, ErrMissingRoller
	}
	if count < 2 || sides <= 0 {
		return DropLowest{}, ErrInvalidDiceSpec
	}

	pool, err := RollWithRng(rng, []Spec{{Sides: sides, Count: count}})
	if err != nil {
		return DropLowest{}, err
	}
	rolls := pool.Rolls[0].Results
	lowest := 0
	for i, value := range rolls {
		if value < rolls[lowest] {
			lowest = i
		}
	}

	total := 0
	for i, value := range rolls {
		if i != lowest {
			total += value
		}
	}
	return DropLowest{
		Rolls:   rolls,
		Dropped: rolls[lowest],
		Total:   total,
	}, nil
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(rng Roller, sides int) int {
	return rng.Intn(sides) + 1
}
