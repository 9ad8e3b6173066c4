package store

// SQL query constants. PostgresStore methods reference these constants.

const userColumns = `id, auth_id, email, name, role, is_active, created_at, updated_at`

const (
	queryInsertUser = `
		INSERT INTO users (auth_id, email, name, role, created_at, updated_at)
		VALUES (@auth_id, @email, @name, @role, now(), now())
		RETURNING ` + userColumns

	queryGetUserByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE lower(email) = lower(@email) AND is_active`

	queryGetUserByAuthID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE auth_id = @auth_id AND is_active`

	queryUpdateUserByAuthID = `
		UPDATE users SET
			name = COALESCE(@name, name),
			email = COALESCE(@email, email),
			updated_at = now()
		WHERE auth_id = @auth_id AND is_active
		RETURNING ` + userColumns

	queryUpdateUserByEmail = `
		UPDATE users SET
			name = COALESCE(@name, name),
			email = COALESCE(@new_email, email),
			updated_at = now()
		WHERE lower(email) = lower(@email) AND is_active
		RETURNING ` + userColumns

	queryUpdateUserRole = `
		UPDATE users SET role = @role, updated_at = now()
		WHERE lower(email) = lower(@email) AND is_active
		RETURNING ` + userColumns

	querySoftDeleteUser = `
		UPDATE users SET is_active = FALSE, updated_at = now()
		WHERE auth_id = @auth_id AND is_active`
)
