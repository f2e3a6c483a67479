package migrations

import _ "embed"

//go:embed 0002_create_leaderboard_blobs.sql
var createLeaderboardBlobsSQL string

func init() {
	Migrations.MustRegister(
		execSQL(createLeaderboardBlobsSQL),
		execSQL(`DROP TABLE IF EXISTS leaderboard_blobs`),
	)
}
