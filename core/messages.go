package core

var (
	SelectionCopiedMessage = "selection copied"
	ChangesSavedMessage    = "changes saved"
)
