package identity

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

type ApproveUserMessage struct {
	UserID string `json:"user_id" doc:"Identifier of the pending account."`
}

func (m ApproveUserMessage) Type() string { return "user.approve" }

type RejectUserMessage struct {
	UserID string `json:"user_id" doc:"Identifier of the account to reject."`
	Reason string `json:"reason,omitempty"`
}

func (m RejectUserMessage) Type() string { return "user.reject" }

// ApproveUserHandler flips the approval gate open and notifies the account.
type ApproveUserHandler struct {
	repo     RepositoryManager
	notifier Notifier
	logger   Logger
}

func NewApproveUserHandler(repo RepositoryManager, notifier Notifier) *ApproveUserHandler {
	if notifier == nil {
		notifier = NewPrintNotifier()
	}
	return &ApproveUserHandler{
		repo:     repo,
		notifier: notifier,
		logger:   defLogger{},
	}
}

func (h *ApproveUserHandler) WithLogger(l Logger) *ApproveUserHandler {
	h.logger = l
	return h
}

func (h *ApproveUserHandler) Execute(ctx context.Context, event ApproveUserMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during user approval",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *ApproveUserHandler) execute(ctx context.Context, event ApproveUserMessage) error {
	return setApproval(ctx, h.repo, h.notifier, h.logger, event.UserID, true,
		"Your account was approved",
		"Your account has been approved. You can now sign in.",
	)
}

// RejectUserHandler keeps the approval gate closed and notifies the account.
type RejectUserHandler struct {
	repo     RepositoryManager
	notifier Notifier
	logger   Logger
}

func NewRejectUserHandler(repo RepositoryManager, notifier Notifier) *RejectUserHandler {
	if notifier == nil {
		notifier = NewPrintNotifier()
	}
	return &RejectUserHandler{
		repo:     repo,
		notifier: notifier,
		logger:   defLogger{},
	}
}

func (h *RejectUserHandler) WithLogger(l Logger) *RejectUserHandler {
	h.logger = l
	return h
}

func (h *RejectUserHandler) Execute(ctx context.Context, event RejectUserMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during user rejection",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *RejectUserHandler) execute(ctx context.Context, event RejectUserMessage) error {
	body := "Your account request was not approved."
	if event.Reason != "" {
		body += " Reason: " + event.Reason
	}
	return setApproval(ctx, h.repo, h.notifier, h.logger, event.UserID, false,
		"Your account was not approved",
		body,
	)
}

func setApproval(ctx context.Context, repo RepositoryManager, notifier Notifier, logger Logger, id string, approved bool, subject, body string) error {
	uid, err := parseUserID(id)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid user id").
			WithMetadata(map[string]any{"user_id": id})
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	// Resolve the account before the transaction opens; a read through the
	// non-tx handle inside RunInTx would block behind it on single-connection
	// stores.
	user, err := repo.Users().GetByID(ctx, id)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryNotFound, "failed to retrieve user for approval")
	}

	err = repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := repo.Users().SetApprovalTx(ctx, tx, uid, approved); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to update approval")
		}

		return nil
	})

	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return richErr
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "approval transaction failed")
	}

	// Delivery rides behind the answer; a lost email never fails the action.
	go func() {
		if err := notifier.Notify(context.Background(), user.Email, subject, body); err != nil {
			logger.Error("approval notification failed", "email", user.Email, "error", err)
		}
	}()

	return nil
}
