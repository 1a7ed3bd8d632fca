// Package loop resolves bracket pairs into a jump table.
package loop

// Table maps the index of each ']' to the index of its matching '['.
type Table map[int]int

// Resolve scans program once and pairs every ']' with its '['.
// On an unbalanced ']' it stops at that bracket. If openers are left over,
// the error points at the innermost one.
func Resolve(program []rune) (Table, error) {
	table := make(Table)
	var stack []int

	for i, ch := range program {
		switch ch {
		case '[':
			stack = append(stack, i)
		case ']':
			if len(stack) == 0 {
				return nil, NewUnmatchedCloseError(i)
			}
			table[i] = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		return nil, NewUnmatchedOpenError(stack[len(stack)-1])
	}

	return table, nil
}
