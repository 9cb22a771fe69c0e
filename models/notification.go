package models

import (
	"fmt"
	"slices"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotificationItem is a pure re-derivation merging a pending decision or
// escalation into the shared alert shape. Never persisted, recomputed on
// every pass since the underlying statuses can change between refreshes.
type NotificationItem struct {
	Id            string
	Type          NotificationType
	Bucket        UrgencyBucket
	Headline      string
	Exposure      float64
	ActionTag     string
	ActionCost    float64
	Savings       float64
	InactionCost  float64
	TimeRemaining string
	CreatedAt     time.Time
}

type NotificationType string

const (
	NotificationDecision   NotificationType = "decision"
	NotificationEscalation NotificationType = "escalation"
)

// BadgeCounts is the single source for every surface that shows a count
// (sidebar, mobile nav, topbar, dashboard pipeline).
type BadgeCounts struct {
	Total    int
	Critical int
	Urgent   int
	Normal   int
}

var exposurePrinter = message.NewPrinter(language.English)

// FormatExposure renders a monetary exposure for headlines, e.g. "$1,250,000".
func FormatExposure(amount float64) string {
	return exposurePrinter.Sprintf("$%.0f", amount)
}

// AggregateNotifications merges PENDING decisions and PENDING/IN_REVIEW
// escalations into one ranked list: ascending urgency-bucket rank, ties by
// descending exposure. Stable, so equal items keep their incoming order.
func AggregateNotifications(now time.Time, decisions []Decision, escalations []Escalation) []NotificationItem {
	items := make([]NotificationItem, 0, len(decisions)+len(escalations))
	for _, d := range decisions {
		if d.Status != DecisionPending {
			continue
		}
		items = append(items, decisionNotification(now, d))
	}
	for _, e := range escalations {
		if !e.IsActionable() {
			continue
		}
		items = append(items, escalationNotification(now, e))
	}
	slices.SortStableFunc(items, func(a, b NotificationItem) int {
		if a.Bucket.Rank() != b.Bucket.Rank() {
			return a.Bucket.Rank() - b.Bucket.Rank()
		}
		return compareFloatDesc(a.Exposure, b.Exposure)
	})
	return items
}

func decisionNotification(now time.Time, d Decision) NotificationItem {
	return NotificationItem{
		Id:            d.Id,
		Type:          NotificationDecision,
		Bucket:        DecisionBucket(d.Urgency),
		Headline:      decisionHeadline(d),
		Exposure:      d.Exposure,
		ActionTag:     d.RecommendedAction,
		ActionCost:    d.ActionCost,
		Savings:       Savings(d.Exposure, d.ActionCost),
		InactionCost:  d.InactionCost,
		TimeRemaining: TimeRemaining(now, d.Deadline),
		CreatedAt:     d.CreatedAt,
	}
}

func escalationNotification(now time.Time, e Escalation) NotificationItem {
	headline := e.Title
	if e.Exposure > 0 {
		headline = fmt.Sprintf("%s at risk: %s", FormatExposure(e.Exposure), e.Title)
	}
	return NotificationItem{
		Id:            e.Id,
		Type:          NotificationEscalation,
		Bucket:        EscalationBucket(e.Priority),
		Headline:      headline,
		Exposure:      e.Exposure,
		TimeRemaining: TimeRemaining(now, e.SlaDeadline),
		CreatedAt:     e.CreatedAt,
	}
}

// decisionHeadline is the financial headline: formatted exposure plus the
// affected-shipment count when both are known, else the plain summary.
func decisionHeadline(d Decision) string {
	if d.Exposure <= 0 {
		return d.Summary
	}
	if d.AffectedShipments > 0 {
		return fmt.Sprintf("%s across %d shipments", FormatExposure(d.Exposure), d.AffectedShipments)
	}
	return fmt.Sprintf("%s at risk", FormatExposure(d.Exposure))
}

// Savings is what acting now saves over doing nothing, clamped at zero when
// the action costs more than the exposure it removes.
func Savings(exposure, actionCost float64) float64 {
	if s := exposure - actionCost; s > 0 {
		return s
	}
	return 0
}

// TimeRemaining renders a human deadline countdown: "2d 4h", "6h", "45m" or
// "OVERDUE". A missing deadline renders empty.
func TimeRemaining(now time.Time, deadline *time.Time) string {
	if !deadlineValid(deadline) {
		return ""
	}
	remaining := deadline.Sub(now)
	switch {
	case remaining <= 0:
		return "OVERDUE"
	case remaining >= 24*time.Hour:
		days := int(remaining / (24 * time.Hour))
		hours := int(remaining/time.Hour) % 24
		return fmt.Sprintf("%dd %dh", days, hours)
	case remaining >= time.Hour:
		return fmt.Sprintf("%dh", int(remaining/time.Hour))
	default:
		minutes := int(remaining / time.Minute)
		if minutes < 1 {
			minutes = 1
		}
		return fmt.Sprintf("%dm", minutes)
	}
}

// TotalExposure is the displayed rollup over a notification list.
func TotalExposure(items []NotificationItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Exposure
	}
	return total
}

func CountBadges(items []NotificationItem) BadgeCounts {
	counts := BadgeCounts{Total: len(items)}
	for _, item := range items {
		switch item.Bucket {
		case BucketCritical:
			counts.Critical++
		case BucketUrgent:
			counts.Urgent++
		default:
			counts.Normal++
		}
	}
	return counts
}
