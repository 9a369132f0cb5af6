package types

// ConfirmationLevel is the depth of finality requested from the rollup
// network for one operation. LevelVerify implies the operation's block was
// already committed; awaiting verify always sequences through commit first.
type ConfirmationLevel int

const (
	LevelCommit ConfirmationLevel = iota
	LevelVerify
)

func (l ConfirmationLevel) String() string {
	switch l {
	case LevelCommit:
		return "commit"
	case LevelVerify:
		return "verify"
	}

	return "unknown"
}
