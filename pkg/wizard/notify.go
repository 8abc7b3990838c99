package wizard

// Notifier displays transient success and error messages to the user.
// Delivery is best-effort; implementations must not block.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Messages shown by the wizard.
const (
	MsgMissingRequired = "Please fill in the required fields"
	MsgGenerating      = "Generating your beautiful website..."
	MsgGenerated       = "Website generated successfully!"
	MsgGenerateFailed  = "Website generation failed, please try again"
)

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

// NopNotifier discards all notifications.
var NopNotifier Notifier = nopNotifier{}
