package user

// StartingTokenBalance is granted to every new user.
const StartingTokenBalance = 1000

// InitialAccuracyScore is the accuracy decimal recorded before a user has
// any settled bets.
const InitialAccuracyScore = "0.00"

// MaxUsernameLength bounds usernames.
const MaxUsernameLength = 32

// Log message constants
const (
	LogMsgRegisterCalled = "RegisterUser called"
	LogMsgUserRegistered = "User registered"
)

// Error context constants
const (
	ErrContextFailedToCreateUser = "failed to create user"
	ErrContextFailedToGetUser    = "failed to get user"
	ErrContextFailedToListUsers  = "failed to list users"
)
