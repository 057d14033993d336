package constants

const (
	GetApiKeyStatus = `
	SELECT api_key, user_id, status FROM api_keys WHERE api_key = $1
	`

	GetPilotFlights = `
	SELECT
		f.id,
		f.flight_number,
		f.status,
		f.reserved_at,
		f.departure_time,
		f.arrival_time,
		va.name AS va_name,
		vr.departure_icao,
		vr.arrival_icao,
		vf.registration AS aircraft_registration,
		fr.validation_status,
		fr.points_awarded
	FROM flights f
	JOIN virtual_airlines va ON f.va_id = va.id
	JOIN va_routes vr ON f.route_id = vr.id
	LEFT JOIN va_fleet vf ON f.fleet_id = vf.id
	LEFT JOIN flight_reports fr ON f.id = fr.flight_id
	WHERE f.user_id = $1
	ORDER BY f.reserved_at DESC
	`

	GetPilotReports = `
	SELECT
		fr.id,
		fr.flight_id,
		fr.flight_duration,
		fr.landing_rate,
		fr.provisional_points,
		fr.points_awarded,
		fr.validation_status,
		fr.admin_notes,
		fr.created_at,
		fr.validated_at,
		f.flight_number,
		vr.departure_icao,
		vr.arrival_icao
	FROM flight_reports fr
	JOIN flights f ON fr.flight_id = f.id
	JOIN va_routes vr ON f.route_id = vr.id
	WHERE f.user_id = $1 AND f.va_id = $2
	ORDER BY fr.created_at DESC
	`
)
