package dynamo

// DetectEquilibrium scans successive differences d(k) = max|x(k) - x(k-1)|
// and returns the first step k at which the last window differences, d(k)
// included, were all below tol. It does not modify traj.
func DetectEquilibrium(traj Trajectory, tol float64, window int) (int, bool) {
	if window < 1 {
		window = 1
	}

	run := 0
	for k := 1; k < len(traj); k++ {
		if traj[k].MaxAbsDiff(traj[k-1]) < tol {
			run++
			if run == window {
				return k, true
			}
		} else {
			run = 0
		}
	}
	return -1, false
}
