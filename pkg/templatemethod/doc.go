// Package templatemethod fixes the skeleton of an operation while letting
// implementations supply the steps. A Pipeline always runs its phases in
// the same order - validate, transform, persist, notify - and an
// implementation cannot reorder or skip ahead; it only fills in what each
// phase does.
//
// The required contract is small:
//
//	type userImporter struct{ db *Store }
//
//	func (i *userImporter) Validate(ctx context.Context, u User) error { ... }
//	func (i *userImporter) Persist(ctx context.Context, u User) error  { ... }
//
//	p := templatemethod.NewPipeline[User](&userImporter{db: db})
//	saved, err := p.Run(ctx, user)
//
// Transform and Notify are optional hooks: the pipeline discovers them by
// type assertion and skips the phase when the implementation does not
// provide one. Failures are tagged with the phase that produced them, so
// callers can tell a validation problem from a storage one:
//
//	var pe *templatemethod.PhaseError
//	if errors.As(err, &pe) && pe.Phase == templatemethod.PhaseValidate { ... }
//
// Notify runs after the item is safely persisted; a notify failure is
// still reported, but the persisted work is not rolled back.
package templatemethod
