package mapping

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/types"
)

// ValidateTargets checks that no two selected entries resolve to the same
// target path. Every colliding group is reported, not just the first, and
// the returned error aborts the run before anything touches the
// filesystem.
func ValidateTargets(entries []types.Entry) error {
	logger := logging.GetLogger("mapping")

	byTarget := make(map[string][]string)
	var order []string

	for _, e := range entries {
		if _, seen := byTarget[e.Target]; !seen {
			order = append(order, e.Target)
		}
		byTarget[e.Target] = append(byTarget[e.Target], e.Name)
	}

	var lines []string
	details := make(map[string]interface{})
	for _, target := range order {
		names := byTarget[target]
		if len(names) < 2 {
			continue
		}
		logger.Error().
			Str("target", target).
			Strs("names", names).
			Msg("Multiple dotfiles map to the same target")
		lines = append(lines, fmt.Sprintf("  %s is targeted by: %s", target, strings.Join(names, ", ")))
		details[target] = names
	}

	if len(lines) == 0 {
		return nil
	}

	return errors.New(errors.ErrTargetConflict,
		"found duplicate target paths:\n"+strings.Join(lines, "\n")).
		WithDetails(details)
}
