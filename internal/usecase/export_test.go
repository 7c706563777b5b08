package usecase

import "time"

// SetNow overrides the checkout clock in tests.
func (u *CheckoutUseCase) SetNow(now func() time.Time) { u.now = now }

// SetNewRef overrides the order reference generator in tests.
func (u *CheckoutUseCase) SetNewRef(newRef func(time.Time) string) { u.newRef = newRef }

// SetSplitterNow overrides the splitter clock in tests.
func (u *SplitterUseCase) SetSplitterNow(now func() time.Time) { u.now = now }
