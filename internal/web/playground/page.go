// Package playground renders the GraphQL Playground IDE page.
package playground

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

// Version of graphql-playground-react loaded from the CDN
const Version = "1.7.42"

const cdn = "https://cdn.jsdelivr.net/npm/graphql-playground-react@" + Version

// Config controls which endpoints the IDE talks to
type Config struct {
	Title                string
	Endpoint             string
	SubscriptionEndpoint string
}

// DefaultConfig points the IDE at /graphql and /subscriptions
func DefaultConfig() Config {
	return Config{
		Title:                "GraphQL Playground",
		Endpoint:             "/graphql",
		SubscriptionEndpoint: "/subscriptions",
	}
}

// initOptions is passed verbatim to GraphQLPlayground.init
type initOptions struct {
	Endpoint             string            `json:"endpoint"`
	SubscriptionEndpoint string            `json:"subscriptionEndpoint,omitempty"`
	Settings             map[string]string `json:"settings"`
}

func optionsFor(cfg Config) initOptions {
	return initOptions{
		Endpoint:             cfg.Endpoint,
		SubscriptionEndpoint: cfg.SubscriptionEndpoint,
		Settings:             map[string]string{"request.credentials": "same-origin"},
	}
}

func asset(path string) string {
	return cdn + "/" + path
}
