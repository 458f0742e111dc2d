package domain

type TokenStatus string

const (
	TokenNotAcquired TokenStatus = "not_acquired"
	TokenIncomplete  TokenStatus = "incomplete"
	TokenValid       TokenStatus = "valid"
)

func ClassifyToken(account Account) TokenStatus {
	if account.APIKey == "" {
		return TokenNotAcquired
	}
	if account.RefreshToken == "" {
		return TokenIncomplete
	}

	return TokenValid
}

func (s TokenStatus) Label() string {
	switch s {
	case TokenNotAcquired:
		return "no token"
	case TokenIncomplete:
		return "token incomplete"
	case TokenValid:
		return "token ok"
	default:
		return string(s)
	}
}
