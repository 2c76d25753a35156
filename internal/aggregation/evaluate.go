package aggregation

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus classifies budget consumption.
type BudgetStatus string

const (
	BudgetGood     BudgetStatus = "good"
	BudgetModerate BudgetStatus = "moderate"
	BudgetWarning  BudgetStatus = "warning"
	BudgetExceeded BudgetStatus = "exceeded"
)

// Budget status thresholds, in percent of the limit.
const (
	BudgetModerateAt = 50.0
	BudgetWarningAt  = 80.0
	BudgetExceededAt = 100.0
)

// BudgetEvaluation is the outcome of EvaluateBudget.
type BudgetEvaluation struct {
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Percentage float64         `json:"percentage"`
	// Remaining is negative once the budget is exceeded.
	Remaining decimal.Decimal `json:"remaining"`
	Exceeded  bool            `json:"exceeded"`
	Status    BudgetStatus    `json:"status"`
}

// EvaluateBudget compares spent against limit. The percentage is not
// clamped so overspending stays visible.
func EvaluateBudget(limit, spent decimal.Decimal) BudgetEvaluation {
	ev := BudgetEvaluation{
		Limit:     limit,
		Spent:     spent,
		Remaining: limit.Sub(spent),
		Status:    BudgetGood,
	}
	if !limit.IsPositive() {
		return ev
	}

	ev.Percentage = Percentage(spent, limit)
	ev.Exceeded = ev.Remaining.IsNegative()
	switch {
	case ev.Percentage >= BudgetExceededAt:
		ev.Status = BudgetExceeded
	case ev.Percentage >= BudgetWarningAt:
		ev.Status = BudgetWarning
	case ev.Percentage >= BudgetModerateAt:
		ev.Status = BudgetModerate
	}
	return ev
}

// GoalStatus classifies goal progress.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalUrgent    GoalStatus = "urgent"
	GoalOverdue   GoalStatus = "overdue"
	GoalCompleted GoalStatus = "completed"
)

// GoalUrgentDays is the deadline distance below which a goal is urgent.
const GoalUrgentDays = 30

// GoalEvaluation is the outcome of EvaluateGoal.
type GoalEvaluation struct {
	Target        decimal.Decimal `json:"target"`
	Current       decimal.Decimal `json:"current"`
	Percentage    float64         `json:"percentage"`
	Remaining     decimal.Decimal `json:"remaining"`
	DaysRemaining *int            `json:"days_remaining"`
	Status        GoalStatus      `json:"status"`
}

// EvaluateGoal measures progress toward target. Percentage is clamped to
// [0, 100] and Remaining never goes below zero.
func EvaluateGoal(target, current decimal.Decimal, deadline *time.Time, now time.Time) GoalEvaluation {
	ev := GoalEvaluation{
		Target:    target,
		Current:   current,
		Remaining: decimal.Max(target.Sub(current), decimal.Zero),
		Status:    GoalActive,
	}
	if target.IsPositive() {
		ev.Percentage = math.Max(0, math.Min(Percentage(current, target), 100))
	}
	if deadline != nil {
		days := DaysUntil(*deadline, now)
		ev.DaysRemaining = &days
	}

	switch {
	case ev.Percentage >= 100:
		ev.Status = GoalCompleted
	case ev.DaysRemaining != nil && *ev.DaysRemaining < 0:
		ev.Status = GoalOverdue
	case ev.DaysRemaining != nil && *ev.DaysRemaining < GoalUrgentDays:
		ev.Status = GoalUrgent
	}
	return ev
}

// DaysUntil returns ceil((deadline - now) / 24h).
func DaysUntil(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// CardType is the kind of payment card.
type CardType string

const (
	CardCredit  CardType = "credit"
	CardDebit   CardType = "debit"
	CardPrepaid CardType = "prepaid"
)

// CardStatus classifies credit-limit usage.
type CardStatus string

const (
	CardNormal        CardStatus = "normal"
	CardAttention     CardStatus = "attention"
	CardCritical      CardStatus = "critical"
	CardNotApplicable CardStatus = "not_applicable"
)

// Card usage thresholds, in percent of the credit limit.
const (
	CardAttentionAt = 75.0
	CardCriticalAt  = 90.0
)

// CardEvaluation is the outcome of EvaluateCard.
type CardEvaluation struct {
	Applicable      bool            `json:"applicable"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	Used            decimal.Decimal `json:"used"`
	UsagePercentage float64         `json:"usage_percentage"`
	Available       decimal.Decimal `json:"available"`
	Status          CardStatus      `json:"status"`
}

// EvaluateCard reports credit-limit usage. Only credit cards have a limit;
// other types short-circuit to CardNotApplicable.
func EvaluateCard(cardType CardType, creditLimit, used decimal.Decimal) CardEvaluation {
	if cardType != CardCredit {
		return CardEvaluation{Status: CardNotApplicable, CreditLimit: decimal.Zero, Used: used, Available: decimal.Zero}
	}

	ev := CardEvaluation{
		Applicable:      true,
		CreditLimit:     creditLimit,
		Used:            used,
		UsagePercentage: Percentage(used, creditLimit),
		Available:       creditLimit.Sub(used),
		Status:          CardNormal,
	}
	switch {
	case ev.UsagePercentage >= CardCriticalAt:
		ev.Status = CardCritical
	case ev.UsagePercentage >= CardAttentionAt:
		ev.Status = CardAttention
	}
	return ev
}
