package utilx

/*
Must is for calls of the pattern `func(...) (out T, err error)` made where an error cannot happen, or
where the caller does not return an error itself. It panics with the error if one is returned.

	g, err := gridx.FromRows(rows)
	require.NoError(t, err)
	cells := g.AsRowMajor()

becomes

	cells := utilx.Must(gridx.FromRows(rows)).AsRowMajor()

The panic value is the error itself, so a recover can still classify it.
*/
func Must[T any](item T, err error) T {
	if err != nil {
		panic(err)
	}
	return item
}
