package twm

import "slices"

// makeSortModifiers canonicalizes a modifier list so that equivalent
// variant stacks share one conflict slot:
//   - plain modifiers are sorted alphabetically
//   - an arbitrary variant or an order-sensitive modifier keeps its
//     position, and the modifiers before and after it stay on their side
func makeSortModifiers(conf *Config) func([]string) []string {
	orderSensitive := make(map[string]bool, len(conf.OrderSensitiveModifiers))
	for _, modifier := range conf.OrderSensitiveModifiers {
		orderSensitive[modifier] = true
	}

	return func(modifiers []string) []string {
		if len(modifiers) < 2 {
			return modifiers
		}

		sorted := make([]string, 0, len(modifiers))
		var unsorted []string

		for _, modifier := range modifiers {
			positionSensitive := (len(modifier) > 0 && modifier[0] == '[') || orderSensitive[modifier]
			if positionSensitive {
				slices.Sort(unsorted)
				sorted = append(sorted, unsorted...)
				sorted = append(sorted, modifier)
				unsorted = unsorted[:0]
				continue
			}
			unsorted = append(unsorted, modifier)
		}

		slices.Sort(unsorted)
		return append(sorted, unsorted...)
	}
}
