package subscriptions

const (
	queryActivePlan = `
		SELECT plan_type
		FROM subscriptions
		WHERE user_id = $1 AND status IN ('active', 'trialing')
		ORDER BY created_at DESC
		LIMIT 1
	`
)
