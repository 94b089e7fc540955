package email

import "fmt"

// HTML-шаблоны писем workflow-а. Держим их инлайном: тексты короткие
// и меняются вместе с кодом, который их шлет.

func NewBidBody(projectTitle, bidderName string, amount int, dashboardURL string) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h2 style="color: #7c3aed;">New Bid Received</h2>
      <p>You have received a new bid for your project:</p>
      <div style="background: #f3f4f6; padding: 16px; border-radius: 8px; margin: 16px 0;">
        <h3 style="margin: 0; color: #1f2937;">%s</h3>
        <p style="margin: 8px 0 0 0;"><strong>Bidder:</strong> %s</p>
        <p style="margin: 8px 0 0 0;"><strong>Bid Amount:</strong> $%d</p>
      </div>
      <a href="%s/dashboard"
         style="background: #7c3aed; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">
        View All Bids
      </a>
    </div>`, projectTitle, bidderName, amount, dashboardURL)
}

func SellerSelectedBody(projectTitle, buyerName, dashboardURL string) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h2 style="color: #2563eb;">Congratulations! You've been selected for a project</h2>
      <p>You have been selected by <strong>%s</strong> for the project:</p>
      <div style="background: #f3f4f6; padding: 16px; border-radius: 8px; margin: 16px 0;">
        <h3 style="margin: 0; color: #1f2937;">%s</h3>
      </div>
      <p>Please log in to your dashboard to view project details and start working.</p>
      <a href="%s/dashboard"
         style="background: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">
        View Dashboard
      </a>
    </div>`, buyerName, projectTitle, dashboardURL)
}

func ProjectCompletedBody(projectTitle, sellerName, dashboardURL string) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h2 style="color: #059669;">Project Completed</h2>
      <p>The project <strong>%s</strong> has been completed by <strong>%s</strong>.</p>
      <p>Please review the deliverables and provide feedback.</p>
      <a href="%s/dashboard"
         style="background: #059669; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">
        Review Project
      </a>
    </div>`, projectTitle, sellerName, dashboardURL)
}
