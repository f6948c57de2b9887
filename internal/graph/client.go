// Package graph constructs the authenticated Microsoft Graph client used for
// every outbound call. The credential and client are built once at startup
// and shared across requests.
package graph

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
)

// Scope for application permissions against Microsoft Graph.
const defaultScope = "https://graph.microsoft.com/.default"

// Credential exchanges the tenant/client/secret triple for a token
// credential. Token internals are never inspected; the credential is an
// opaque capability handed to the Graph client.
func Credential(tenantID, clientID, clientSecret string) (azcore.TokenCredential, error) {
	cred, err := azidentity.NewClientSecretCredential(tenantID, clientID, clientSecret, nil)
	if err != nil {
		return nil, fmt.Errorf("create client secret credential: %w", err)
	}
	return cred, nil
}

// NewClient builds a Graph service client bound to the given credential.
func NewClient(cred azcore.TokenCredential) (*msgraphsdk.GraphServiceClient, error) {
	client, err := msgraphsdk.NewGraphServiceClientWithCredentials(cred, []string{defaultScope})
	if err != nil {
		return nil, fmt.Errorf("initialize graph client: %w", err)
	}
	return client, nil
}
