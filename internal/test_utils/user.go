package test_utils

import (
	"context"

	"github.com/centavo/centavo/pkg/user"
)

type TestUserProvider struct{}

func (p TestUserProvider) GetCurrentUser(ctx context.Context) (user.User, error) {
	return user.User{
		Id:          123,
		Uid:         "test-user-uid",
		Username:    "test_user",
		DisplayName: "Test User",
		Settings: user.Settings{
			Timezone: "Europe/Warsaw",
			Currency: "EUR",
		},
	}, nil
}
