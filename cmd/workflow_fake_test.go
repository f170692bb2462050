package cmd

import (
	"context"

	"github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/domain"
)

// fakeWorkflow captures the arguments commands pass to the workflow.
type fakeWorkflow struct {
	scanArgs *domain.ScanArgs
	listArgs *domain.ListArgs
	viewArgs *domain.ViewArgs
	diffArgs *domain.DiffArgs

	scanErr error
	diffOut string
}

func (f *fakeWorkflow) Scan(_ context.Context, args domain.ScanArgs) error {
	f.scanArgs = &args
	return f.scanErr
}

func (f *fakeWorkflow) List(_ context.Context, args domain.ListArgs) error {
	f.listArgs = &args
	return nil
}

func (f *fakeWorkflow) View(_ context.Context, args domain.ViewArgs) error {
	f.viewArgs = &args
	return nil
}

func (f *fakeWorkflow) Diff(_ context.Context, args domain.DiffArgs) (string, error) {
	f.diffArgs = &args
	return f.diffOut, nil
}

// swapWorkflow installs a fake workflow and returns a restore func.
func swapWorkflow(fake *fakeWorkflow) func() {
	original := workflow
	workflow = fake

	return func() { workflow = original }
}
