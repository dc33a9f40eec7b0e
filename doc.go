// Package identity provides the user-identity core for a signup/approval
// gated service: username derivation, credential hashing with lazy migration
// of legacy plaintext rows, and the workflows that decide whether a
// credential may authenticate.
//
// Workflows:
//   - Registrar.Signup inserts pending accounts. Emails are the business key;
//     a second signup for a known email is rejected before any insert.
//   - Authenticator.Login resolves usernames case-insensitively, enforces the
//     approval gate before the password check, and strips the stored
//     credential from every record it returns. Valid legacy plaintext
//     credentials are rehashed in the background, best effort.
//   - Accounts answers role and active-status lookups by email.
//   - ApproveUserHandler / RejectUserHandler flip the approval gate and
//     notify the account through the injected Notifier.
//
// Collaborators:
//   - UserStore is the persistence seam. A Bun-backed Users repository ships
//     in-tree (NewUsersRepository + NewUserStore); tests substitute mocks.
//   - Notifier delivers outbound mail. The default implementation prints.
package identity
