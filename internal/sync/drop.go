package sync

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/enesk/study-planner/internal/model"
	"github.com/enesk/study-planner/internal/plan"
	"github.com/enesk/study-planner/internal/week"
)

// DropRequest describes a completed drag gesture between two ordered
// lists. List ids follow a small grammar:
//
//	monthly:<monthID>:<subject>
//	weekly:<monthID>:<weekNumber>
//	day:<YYYY-MM-DD>
type DropRequest struct {
	SourceID         string `json:"sourceId"`
	SourceIndex      int    `json:"sourceIndex"`
	DestinationID    string `json:"destinationId"`
	DestinationIndex int    `json:"destinationIndex"`
}

type listKind int

const (
	listMonthly listKind = iota
	listWeekly
	listDay
)

type listRef struct {
	kind       listKind
	monthID    string
	subject    string
	weekNumber int
	dateKey    string
}

func parseListID(id string) (listRef, error) {
	parts := strings.SplitN(id, ":", 3)
	switch parts[0] {
	case "monthly":
		if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
			return listRef{}, fmt.Errorf("malformed monthly list id %q", id)
		}
		return listRef{kind: listMonthly, monthID: parts[1], subject: parts[2]}, nil
	case "weekly":
		if len(parts) != 3 {
			return listRef{}, fmt.Errorf("malformed weekly list id %q", id)
		}
		n, err := strconv.Atoi(parts[2])
		if err != nil || n < 1 || parts[1] == "" {
			return listRef{}, fmt.Errorf("malformed weekly list id %q", id)
		}
		return listRef{kind: listWeekly, monthID: parts[1], weekNumber: n}, nil
	case "day":
		if len(parts) != 2 {
			return listRef{}, fmt.Errorf("malformed day list id %q", id)
		}
		if _, err := week.ParseKey(parts[1]); err != nil {
			return listRef{}, fmt.Errorf("malformed day list id %q: %w", id, err)
		}
		return listRef{kind: listDay, dateKey: parts[1]}, nil
	default:
		return listRef{}, fmt.Errorf("unknown list id %q", id)
	}
}

// HandleDrop dispatches a drag result to the matching transition.
// Stale gestures whose source index no longer exists are dropped
// silently; forbidden moves surface a warning notification. Both
// resolve the request without an error so callers treat them as
// handled.
func (e *Engine) HandleDrop(ctx context.Context, req DropRequest) error {
	src, err := parseListID(req.SourceID)
	if err != nil {
		return err
	}
	dst, err := parseListID(req.DestinationID)
	if err != nil {
		return err
	}

	err = e.dispatchDrop(ctx, req, src, dst)
	switch {
	case errors.Is(err, model.ErrIndexOutOfRange):
		e.log.Debug().Str("source", req.SourceID).Int("index", req.SourceIndex).
			Msg("ignoring stale drop")
		return nil
	case errors.Is(err, model.ErrForbidden):
		e.notify.Notify(ctx, model.NotifyWarning, "Haftalık planlardan gelen görevler taşınamaz")
		return nil
	default:
		return err
	}
}

func (e *Engine) dispatchDrop(ctx context.Context, req DropRequest, src, dst listRef) error {
	switch {
	case src.kind == listMonthly && dst.kind == listWeekly:
		if src.monthID != dst.monthID {
			return fmt.Errorf("cannot assign across months (%s to %s)", src.monthID, dst.monthID)
		}
		return e.AssignToWeek(ctx, dst.monthID, dst.weekNumber, src.subject, req.SourceIndex)

	case src.kind == listWeekly && dst.kind == listWeekly:
		if src.monthID != dst.monthID || src.weekNumber != dst.weekNumber {
			return fmt.Errorf("cannot move topics between weekly plans (%s to %s)", req.SourceID, req.DestinationID)
		}
		return e.ReorderWeekTopics(ctx, src.monthID, src.weekNumber, req.SourceIndex, req.DestinationIndex)

	case src.kind == listWeekly && dst.kind == listDay:
		text, err := e.weeklyTopicText(ctx, src, req.SourceIndex)
		if err != nil {
			return err
		}
		day, err := week.ParseKey(dst.dateKey)
		if err != nil {
			return err
		}
		return e.AssignToDay(ctx, day, text, req.SourceIndex)

	case src.kind == listDay && dst.kind == listDay:
		if src.dateKey == dst.dateKey {
			return e.daily.Reorder(ctx, src.dateKey, req.SourceIndex, req.DestinationIndex)
		}
		taskID, err := e.dayTaskID(ctx, src.dateKey, req.SourceIndex)
		if err != nil {
			return err
		}
		return e.daily.Move(ctx, src.dateKey, dst.dateKey, taskID, req.DestinationIndex)

	default:
		return fmt.Errorf("unsupported drop from %s to %s", req.SourceID, req.DestinationID)
	}
}

func (e *Engine) weeklyTopicText(ctx context.Context, src listRef, index int) (string, error) {
	plans, err := e.weekly.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	p, ok := plan.FindPlanByID(plans, model.WeekPlanID(src.monthID, src.weekNumber))
	if !ok {
		return "", fmt.Errorf("weekly plan %s: %w", model.WeekPlanID(src.monthID, src.weekNumber), model.ErrNotFound)
	}
	if index < 0 || index >= len(p.Topics) {
		return "", fmt.Errorf("topic index %d in plan %s: %w", index, p.ID, model.ErrIndexOutOfRange)
	}
	return p.Topics[index].Text, nil
}

func (e *Engine) dayTaskID(ctx context.Context, dateKey string, index int) (string, error) {
	tasks, err := e.daily.Get(ctx, dateKey)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(tasks) {
		return "", fmt.Errorf("task index %d on %s: %w", index, dateKey, model.ErrIndexOutOfRange)
	}
	return tasks[index].ID, nil
}
