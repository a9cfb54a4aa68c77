/*
Package authapi defines the wire types for the MoodMate authentication
service and a small Go client for them.

The server handlers in internal/auth/http serialize these types; the client
is used by other services and by the end-to-end tests:

	client := authapi.NewClient("https://auth.example.com")

	bundle, err := client.Register(ctx, authapi.RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "p12345678",
	})

	user, err := client.Me(ctx, bundle.AccessToken)

Failures are returned as *APIError carrying the HTTP status code and the
service's fixed detail message.
*/
package authapi
