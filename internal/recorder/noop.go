package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordDay(_ *DaySnapshot) error      { return nil }
func (n *NoopRecorder) RecordChoice(_ *ChoiceEvent) error   { return nil }
func (n *NoopRecorder) RecordAction(_ *ActionEvent) error   { return nil }
func (n *NoopRecorder) RecordFinance(_ *FinanceEvent) error { return nil }
func (n *NoopRecorder) RecordRun(_ *RunSummary) error       { return nil }
func (n *NoopRecorder) Close() error                        { return nil }
