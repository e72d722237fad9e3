package advice

import "context"

// DisabledClient is used when no API key is configured. It answers with
// the same canned text the advice usecase falls back to on model errors,
// so the endpoints keep working in demo setups.
type DisabledClient struct{}

// NewDisabledClient creates a client that never calls the model.
func NewDisabledClient() *DisabledClient {
	return &DisabledClient{}
}

func (c *DisabledClient) PropertyAdvice(ctx context.Context, propertyTitle, userNeeds string) (string, error) {
	return "I'm having trouble connecting to my AI brain right now, but this property looks lovely!", nil
}

func (c *DisabledClient) SmartDescription(ctx context.Context, details string) (string, error) {
	return details, nil
}

func (c *DisabledClient) Close() error {
	return nil
}
