// AngelaMos | 2026
// google.go

package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FederatedIdentity is the verified result of a Google sign-in token.
type FederatedIdentity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

type FederatedVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*FederatedIdentity, error)
}

type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier builds the Google sign-in verifier from a service
// account credentials file. Callers pass nil to the auth service when no
// credentials are configured.
func NewFirebaseVerifier(
	ctx context.Context,
	credentialsFile string,
) (FederatedVerifier, error) {
	app, err := firebase.NewApp(
		ctx,
		nil,
		option.WithCredentialsFile(credentialsFile),
	)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}

	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) VerifyIDToken(
	ctx context.Context,
	idToken string,
) (*FederatedIdentity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("verify google id token: %w", err)
	}

	identity := &FederatedIdentity{Subject: token.UID}

	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		identity.Picture = picture
	}

	return identity, nil
}
