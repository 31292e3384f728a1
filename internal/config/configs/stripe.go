package configs

// Stripe holds configuration for the Stripe payment integration. APIKey is
// the secret key used for server-side calls. SuccessURL and CancelURL are
// where the hosted checkout redirects the donor after completing or
// abandoning a session.
type Stripe struct {
	APIKey     string `env:"API_KEY,required"`
	SuccessURL string `env:"SUCCESS_URL" envDefault:"http://localhost:8080/donate/thank-you"`
	CancelURL  string `env:"CANCEL_URL" envDefault:"http://localhost:8080/donate"`
}
