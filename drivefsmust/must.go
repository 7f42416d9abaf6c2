package drivefsmust

// must0 panics with err unless it is nil.
func must0(err error) {
	if err != nil {
		panic(err)
	}
}

// must1 returns v, or panics with err unless it is nil.
func must1[T any](v T, err error) T {
	must0(err)
	return v
}
