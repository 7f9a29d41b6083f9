package discord

// Friendly message constants for Discord responses
const (
	MsgCooldownActive = "⏳ **Whoa there!**"
	MsgNotFound       = "❓ **Not Found**"
	MsgNotAllowed     = "⚠️ **Can't do that yet**"
	MsgBadInput       = "✏️ **Check your input**"
	MsgGenericError   = "❌ Something went wrong. Try again in a moment."
	MsgServerDown     = "❌ Error connecting to the game server."

	MsgInventoryEmpty = "Your satchel is empty. Try `/forage`!"
	MsgNoOrders       = "No customers yet. Orders arrive when night falls."
	MsgNothingGained  = "Nothing grows there yet this week."
)
