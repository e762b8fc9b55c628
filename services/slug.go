package services

import (
	"context"
	"fmt"

	"ecommerce-api/utils"
)

// deriveSlug turns a name into a free slug by probing the store: the base
// form first, then base-2, base-3 and so on. excludeID keeps a record from
// colliding with itself on update.
//
// The probe is best-effort under concurrency; the unique constraint in the
// schema is the final arbiter and surfaces a conflict if two writers race.
func deriveSlug(ctx context.Context, name string, excludeID int, exists func(context.Context, string, int) (bool, error)) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		return "", fmt.Errorf("name %q yields an empty slug", name)
	}

	slug := base
	for i := 2; ; i++ {
		taken, err := exists(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
