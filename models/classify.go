package models

// Classification is the shared ranking layer: every surface that orders or
// badges decisions and escalations goes through these functions so counts and
// orderings can never diverge between screens.

// UrgencyBucket is the three-level space decisions and escalations are merged
// into at the notification/dashboard level.
type UrgencyBucket string

const (
	BucketCritical UrgencyBucket = "critical"
	BucketUrgent   UrgencyBucket = "urgent"
	BucketNormal   UrgencyBucket = "normal"
)

func (b UrgencyBucket) Rank() int {
	switch b {
	case BucketCritical:
		return 0
	case BucketUrgent:
		return 1
	default:
		return 2
	}
}

// RankKey is an ordinal sort key. Lower Ordinal ranks first; equal ordinals
// rank by descending Exposure.
type RankKey struct {
	Ordinal  int
	Exposure float64
}

func (k RankKey) Less(other RankKey) bool {
	if k.Ordinal != other.Ordinal {
		return k.Ordinal < other.Ordinal
	}
	return k.Exposure > other.Exposure
}

// ClassifyDecision is total: urgency defaults to WATCH upstream of this call,
// and even a raw zero-value Decision yields a defined key.
func ClassifyDecision(d Decision) RankKey {
	return RankKey{Ordinal: d.Urgency.Rank(), Exposure: d.Exposure}
}

func ClassifyEscalation(e Escalation) RankKey {
	return RankKey{Ordinal: EscalationBucket(e.Priority).Rank(), Exposure: e.Exposure}
}

func DecisionBucket(u Urgency) UrgencyBucket {
	switch u {
	case UrgencyImmediate:
		return BucketCritical
	case UrgencyUrgent:
		return BucketUrgent
	default:
		return BucketNormal
	}
}

func EscalationBucket(p EscalationPriority) UrgencyBucket {
	switch p {
	case EscalationCritical:
		return BucketCritical
	case EscalationHigh:
		return BucketUrgent
	default:
		return BucketNormal
	}
}
