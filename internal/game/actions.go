package game

import (
	"fmt"
	"log"

	"LifeLedger/internal/finance"
	"LifeLedger/internal/model"
	"LifeLedger/internal/recorder"
)

// ActionOutcome reports one performed action.
type ActionOutcome struct {
	Action   model.ActionItem
	Changes  map[string]float64
	Status   model.Status
	TimeLeft float64
}

// PerformAction applies a discretionary action to the session. It is local
// only: no remote call is made. Validation happens before any mutation, so a
// rejected action leaves stats and time untouched.
func (c *Controller) PerformAction(action model.ActionItem) (*ActionOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess == nil {
		return nil, ErrNotStarted
	}
	if c.state == StateFinished {
		return nil, ErrGameFinished
	}
	if c.state != StateAwaitingChoice {
		return nil, ErrChoicePending
	}
	if action.TimeCost > c.sess.TimeAllocation {
		return nil, fmt.Errorf("%s needs %.1fh, %.1fh left: %w",
			action.Name, action.TimeCost, c.sess.TimeAllocation, ErrInsufficientTime)
	}
	if action.Cost > c.sess.Stats.Money {
		return nil, fmt.Errorf("%s costs %.2f, have %.2f: %w",
			action.Name, action.Cost, c.sess.Stats.Money, ErrInsufficientFunds)
	}

	oldStatus := c.sess.Status()
	stats, bankrupt := model.ApplyImpact(c.sess.Stats, action.Impact)
	c.sess.Stats = stats
	c.sess.Bankrupt = c.sess.Bankrupt || bankrupt
	c.sess.TimeAllocation -= action.TimeCost
	if c.sess.TimeAllocation < 0 {
		c.sess.TimeAllocation = 0
	}
	finance.RecordCashDelta(&c.sess.Finances, action.Name, action.Impact.Money)

	newStatus := c.sess.Status()
	if newStatus.IsOver {
		c.finishLocked(false)
	}

	if err := c.rec.RecordAction(&recorder.ActionEvent{
		GameID:     c.sess.GameID,
		Day:        c.sess.Day,
		ActionID:   action.ID,
		Name:       action.Name,
		TimeCost:   action.TimeCost,
		MoneyDelta: action.Impact.Money,
	}); err != nil {
		log.Printf("[ERROR] record action: %v", err)
	}

	return &ActionOutcome{
		Action:   action,
		Changes:  statusChanges(oldStatus, newStatus),
		Status:   newStatus,
		TimeLeft: c.sess.TimeAllocation,
	}, nil
}

// OpenSavings opens the session's savings account with the given type and
// annual rate.
func (c *Controller) OpenSavings(typ model.AccountType, annualRate float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess == nil {
		return ErrNotStarted
	}
	if err := finance.Open(&c.sess.Finances, typ, annualRate); err != nil {
		return err
	}
	c.recordFinanceLocked("OPEN", 0)
	return nil
}

// DepositSavings moves amount from cash into savings.
func (c *Controller) DepositSavings(amount float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess == nil {
		return ErrNotStarted
	}
	if amount > c.sess.Stats.Money {
		return fmt.Errorf("deposit %.2f, have %.2f: %w", amount, c.sess.Stats.Money, ErrInsufficientFunds)
	}
	if err := finance.Deposit(c.sess.Finances.Savings, amount); err != nil {
		return err
	}
	c.sess.Stats.Money -= amount
	c.recordFinanceLocked("DEPOSIT", amount)
	return nil
}

// WithdrawSavings moves amount from savings back into cash, honoring the
// fixed account's lifetime limit.
func (c *Controller) WithdrawSavings(amount float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess == nil {
		return ErrNotStarted
	}
	if err := finance.Withdraw(c.sess.Finances.Savings, amount); err != nil {
		return err
	}
	c.sess.Stats.Money += amount
	c.recordFinanceLocked("WITHDRAW", amount)
	return nil
}

// recordFinanceLocked logs a savings change. Caller holds the mutex.
func (c *Controller) recordFinanceLocked(kind string, amount float64) {
	var balance float64
	if c.sess.Finances.Savings != nil {
		balance = c.sess.Finances.Savings.Balance
	}
	if err := c.rec.RecordFinance(&recorder.FinanceEvent{
		GameID:  c.sess.GameID,
		Day:     c.sess.Day,
		Kind:    kind,
		Amount:  amount,
		Balance: balance,
	}); err != nil {
		log.Printf("[ERROR] record finance: %v", err)
	}
}
