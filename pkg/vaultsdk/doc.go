/*
Package vaultsdk provides a Go client for the vaultshare HTTP API.

# SDKClient vs Session

  - SDKClient: public endpoints (register, login, password recovery, health)
  - Session: endpoints that need an access token

	client := vaultsdk.NewSDKClient("https://vault.example.com")

	session, err := client.Authenticate(ctx, "ann@example.com", "secret")
	if err != nil {
		return err
	}

	accounts, err := session.ListAccounts(ctx)

Login only returns tokens in the body for extension clients, so the client
sends an Origin with the chrome-extension scheme (see DefaultOrigin).

# Token Refresh

A session request that comes back 401 refreshes the token pair once and is
retried. Sessions are safe for concurrent use.

# Errors

Failed calls return *APIError carrying the status, message and errorCode
from the response body. Compare with errors.Is against the predefined
values:

	if errors.Is(err, vaultsdk.ErrIncorrectPassword) {
		...
	}
*/
package vaultsdk
