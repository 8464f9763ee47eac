package service

import (
	"context"
	"fmt"
)

// withCompensation runs action and, when it fails, attempts undo before
// surfacing the action's error. An undo failure is attached to the returned
// error so neither outcome is lost. The compensation runs at most once and
// only after the action has failed; a crash between the two steps is outside
// its guarantee.
func withCompensation(ctx context.Context, action, undo func(context.Context) error) error {
	err := action(ctx)
	if err == nil {
		return nil
	}
	if undoErr := undo(ctx); undoErr != nil {
		return fmt.Errorf("%w; rollback delete failed: %v", err, undoErr)
	}
	return err
}
