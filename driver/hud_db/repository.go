package hud_db

// HudDBRepository bundles every query the service runs against Postgres.
type HudDBRepository struct {
	pool DBPool
}

func NewHudDBRepository(pool DBPool) *HudDBRepository {
	return &HudDBRepository{pool: pool}
}
