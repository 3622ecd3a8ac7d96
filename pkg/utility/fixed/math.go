package fixed

func Mean(points []Point) (Point, error) {
	if len(points) == 0 {
		return Zero, nil
	}
	sum := Zero
	var err error
	for _, point := range points {
		if sum, err = sum.AddChecked(point); err != nil {
			return Point{}, err
		}
	}
	return sum.DivIntChecked(len(points))
}

func StdDev(points []Point, mean Point) (Point, error) {
	if len(points) <= 1 {
		return Zero, nil
	}
	sum, err := squaredDeviations(points, mean)
	if err != nil {
		return Point{}, err
	}
	return sum.DivInt(len(points)).Sqrt(), nil
}

func SampleStdDev(points []Point, mean Point) (Point, error) {
	if len(points) <= 1 {
		return Zero, nil
	}
	sum, err := squaredDeviations(points, mean)
	if err != nil {
		return Point{}, err
	}
	return sum.DivInt(len(points) - 1).Sqrt(), nil
}

func Variance(points []Point, mean Point) (Point, error) {
	if len(points) <= 1 {
		return Zero, nil
	}
	sum, err := squaredDeviations(points, mean)
	if err != nil {
		return Point{}, err
	}
	return sum.DivInt(len(points)), nil
}

func SampleVariance(points []Point, mean Point) (Point, error) {
	if len(points) <= 1 {
		return Zero, nil
	}
	sum, err := squaredDeviations(points, mean)
	if err != nil {
		return Point{}, err
	}
	return sum.DivInt(len(points) - 1), nil
}

func squaredDeviations(points []Point, mean Point) (Point, error) {
	sum := Zero
	for _, point := range points {
		diff, err := point.SubChecked(mean)
		if err != nil {
			return Point{}, err
		}
		square, err := diff.MulChecked(diff)
		if err != nil {
			return Point{}, err
		}
		if sum, err = sum.AddChecked(square); err != nil {
			return Point{}, err
		}
	}
	return sum, nil
}

func Min(points []Point) Point {
	if len(points) == 0 {
		return Zero
	}

	minVal := points[0]
	for _, point := range points[1:] {
		if point.Lt(minVal) {
			minVal = point
		}
	}
	return minVal
}

func Max(points []Point) Point {
	if len(points) == 0 {
		return Zero
	}

	maxVal := points[0]
	for _, point := range points[1:] {
		if point.Gt(maxVal) {
			maxVal = point
		}
	}
	return maxVal
}
