package outcome

// Unit is the payload of operations whose only observable outcome is
// "succeeded with no data". All Unit values are equal.
type Unit struct{}

// Done is the canonical successful Result[Unit].
func Done() Result[Unit] {
	return Success(Unit{})
}
