package constants

const (
	MsgNotAMember        = "Not a member of this Virtual Airline"
	MsgRouteNotFound     = "Route not found"
	MsgFleetNotFound     = "Fleet aircraft not found"
	MsgFlightNotFound    = "Flight not found"
	MsgReportNotFound    = "Flight report not found"
	MsgTourNotFound      = "Tour not found"
	MsgNotAuthorized     = "Not authorized"
	MsgAlreadyDecided    = "Flight report has already been reviewed"
	MsgAlreadyJoined     = "Already participating in this tour"
	MsgCancelNotReserved = "Can only cancel reserved flights"
	MsgFlightNotActive   = "Flight is not in progress"
	MsgDuplicateBooking  = "An open flight already exists for this route"
)
