// Package errors provides coded errors for the checklist.
//
// Errors carry a Code, a message, an optional cause and metadata:
//
//	err := errors.NotFoundf("no armor item named %q", name)
//	err := errors.InvalidArgument("enchantment is not offered").
//	    WithMeta("item", name)
//
// Wrapping preserves the code of an existing *Error:
//
//	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
//	    return errors.Wrapf(err, "failed to store %s", key)
//	}
//
// Use the Is helpers to branch on the code:
//
//	if errors.IsInvalidArgument(err) {
//	    // report to the user
//	}
//
// Config validation collects field errors with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("redis.endpoint", cfg.Redis.Endpoint, vb)
//	return vb.Build()
//
// Repositories wrap storage failures. The controller treats those as
// best-effort and logs them; only membership and precondition failures on
// user edits are returned to callers.
package errors
