// Package transport is a thin HTTP client for CAMARA APIs.
//
// Requests are dumped to wire trees by their schemas and sent as JSON;
// responses are decoded and coerced back into typed models. Non-2xx
// responses surface as *APIError carrying the coerced ErrorInfo body.
//
//	client, err := transport.NewClient(transport.DefaultConfig().
//	    WithBaseURL("https://api.example.com").
//	    WithToken(token))
//	info, err := transport.NewSimSwap(client).Check(ctx,
//	    models.CreateCheckSimSwap{}.WithPhoneNumber("+346661113334").WithMaxAge(240))
//
// Retries and TLS configuration are left to the supplied *http.Client.
package transport
