package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"envrt-site/internal/model"
)

// Email rendering: template substitution only. The markup is the fixed
// designer-authored table layout; the only computation is mapping scores and
// costs to bar widths.

// formatGBP renders a whole-pound amount with thousands separators, en-GB style.
func formatGBP(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return "£" + s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return "£" + string(out)
}

// costBarPct maps a cost onto a 0-100 bar width with a 5% visibility floor.
func costBarPct(cost, maxCost int) float64 {
	if maxCost <= 0 {
		return 5
	}
	pct := float64(cost) / float64(maxCost) * 100
	if pct < 5 {
		return 5
	}
	return pct
}

var tmplFuncs = template.FuncMap{
	"gbp": formatGBP,
	"inc": func(i int) int { return i + 1 },
}

var (
	assessmentEmailTmpl = template.Must(template.New("assessment").Funcs(tmplFuncs).Parse(assessmentEmailHTML))
	roiEmailTmpl        = template.Must(template.New("roi").Funcs(tmplFuncs).Parse(roiEmailHTML))
	roiInternalTmpl     = template.Must(template.New("roiInternal").Funcs(tmplFuncs).Parse(roiInternalHTML))
	contactInternalTmpl = template.Must(template.New("contactInternal").Funcs(tmplFuncs).Parse(contactInternalHTML))
)

// RenderAssessmentEmail builds the respondent's score-card email
func RenderAssessmentEmail(lead *model.AssessmentLead) (string, error) {
	var buf bytes.Buffer
	if err := assessmentEmailTmpl.Execute(&buf, lead); err != nil {
		return "", fmt.Errorf("render assessment email: %w", err)
	}
	return buf.String(), nil
}

type roiEmailData struct {
	*model.ROILead
	EnvrtPct   float64
	ConsultPct float64
	InhousePct float64
}

// RenderROIEmail builds the respondent's cost-comparison email
func RenderROIEmail(lead *model.ROILead) (string, error) {
	maxCost := lead.EnvrtCost
	if lead.ConsultantCost > maxCost {
		maxCost = lead.ConsultantCost
	}
	if lead.InhouseCost > maxCost {
		maxCost = lead.InhouseCost
	}

	data := roiEmailData{
		ROILead:    lead,
		EnvrtPct:   costBarPct(lead.EnvrtCost, maxCost),
		ConsultPct: costBarPct(lead.ConsultantCost, maxCost),
		InhousePct: costBarPct(lead.InhouseCost, maxCost),
	}
	var buf bytes.Buffer
	if err := roiEmailTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render roi email: %w", err)
	}
	return buf.String(), nil
}

// RenderROIInternalEmail builds the sales notification for an ROI lead
func RenderROIInternalEmail(lead *model.ROILead) (string, error) {
	var buf bytes.Buffer
	if err := roiInternalTmpl.Execute(&buf, lead); err != nil {
		return "", fmt.Errorf("render roi internal email: %w", err)
	}
	return buf.String(), nil
}

// RenderContactInternalEmail builds the sales notification for a contact-form lead
func RenderContactInternalEmail(lead *model.ContactLead) (string, error) {
	var buf bytes.Buffer
	if err := contactInternalTmpl.Execute(&buf, lead); err != nil {
		return "", fmt.Errorf("render contact internal email: %w", err)
	}
	return buf.String(), nil
}

const assessmentEmailHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width,initial-scale=1.0"></head>
<body style="margin:0;padding:0;background:#f5f5f0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background:#f5f5f0;">
    <tr><td align="center" style="padding:40px 16px;">
      <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;width:100%;">

        <tr><td style="padding:0 0 32px;">
          <img src="https://envrt.com/brand/envrt-logo.png" alt="ENVRT" height="32" style="height:32px;width:auto;">
        </td></tr>

        <tr><td style="background:#ffffff;border-radius:16px;overflow:hidden;">
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
            <tr><td style="background:#1b3a2d;padding:32px 32px 28px;" align="center">
              <p style="margin:0 0 4px;font-size:13px;text-transform:uppercase;letter-spacing:1.5px;color:#1a7a6d;font-weight:600;">Your DPP Readiness Score</p>
              <p style="margin:0;font-size:56px;font-weight:700;color:#ffffff;line-height:1.1;">{{.Overall}}<span style="font-size:24px;color:#a0a0a0">/100</span></p>
              <p style="margin:12px 0 0;display:inline-block;padding:4px 14px;border-radius:99px;font-size:12px;font-weight:600;letter-spacing:0.5px;background:rgba(26,122,109,0.15);color:#1a7a6d;">{{.Band}}</p>
            </td></tr>

            <tr><td style="padding:28px 32px 0;">
              <p style="margin:0;font-size:18px;font-weight:600;color:#1b3a2d;line-height:1.4;">{{.Headline}}</p>
              <p style="margin:12px 0 0;font-size:14px;color:#555;line-height:1.7;">{{.Summary}}</p>
            </td></tr>

            <tr><td style="padding:28px 32px 0;">
              <p style="margin:0 0 12px;font-size:13px;text-transform:uppercase;letter-spacing:1px;color:#1a7a6d;font-weight:600;">Dimension Scores</p>
              <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
                {{range .Dimensions}}
                <tr>
                  <td style="padding:12px 16px;font-size:14px;color:#1b3a2d;border-bottom:1px solid #e8e8e8;">{{.Label}}</td>
                  <td style="padding:12px 16px;border-bottom:1px solid #e8e8e8;">
                    <div style="background:#f0f0f0;border-radius:8px;height:8px;width:100%;">
                      <div style="background:#1a7a6d;border-radius:8px;height:8px;width:{{.Score}}%;"></div>
                    </div>
                  </td>
                  <td style="padding:12px 16px;font-size:14px;font-weight:600;color:#1b3a2d;border-bottom:1px solid #e8e8e8;text-align:right;">{{.Score}}/100</td>
                </tr>
                {{end}}
              </table>
            </td></tr>

            {{if .GreenClaimsFlag}}
            <tr><td style="padding:24px 32px 0;">
              <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
                <tr><td style="background:#fef3c7;border-left:4px solid #f59e0b;border-radius:8px;padding:16px 20px;">
                  <p style="margin:0;font-size:13px;font-weight:600;color:#92400e;">Green Claims Risk Flag</p>
                  <p style="margin:6px 0 0;font-size:13px;color:#92400e;line-height:1.6;">You indicated that your brand makes sustainability claims publicly but may lack the verified data to substantiate them. Under the EU Green Claims Directive, unsubstantiated claims carry real legal risk from 2026.</p>
                </td></tr>
              </table>
            </td></tr>
            {{end}}

            <tr><td style="padding:24px 32px 0;">
              <p style="margin:0 0 8px;font-size:13px;text-transform:uppercase;letter-spacing:1px;color:#1a7a6d;font-weight:600;">Your Timeline Context</p>
              <p style="margin:0;font-size:14px;color:#555;line-height:1.7;">{{.TimelineRisk}}</p>
            </td></tr>

            <tr><td style="padding:28px 32px 0;">
              <p style="margin:0 0 12px;font-size:13px;text-transform:uppercase;letter-spacing:1px;color:#1a7a6d;font-weight:600;">Recommended Actions</p>
              <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
                {{range $i, $a := .Actions}}
                <tr>
                  <td style="padding:10px 16px;vertical-align:top;width:28px;">
                    <span style="display:inline-block;width:22px;height:22px;border-radius:50%;background:#1a7a6d;color:#fff;font-size:12px;font-weight:600;text-align:center;line-height:22px;">{{inc $i}}</span>
                  </td>
                  <td style="padding:10px 16px;font-size:14px;color:#1b3a2d;line-height:1.6;">{{$a}}</td>
                </tr>
                {{end}}
              </table>
            </td></tr>

            <tr><td style="padding:32px 32px 36px;" align="center">
              <a href="https://envrt.com/contact" style="display:inline-block;background:#1a7a6d;color:#ffffff;font-size:15px;font-weight:600;text-decoration:none;padding:14px 32px;border-radius:12px;">Get in touch</a>
              <p style="margin:16px 0 0;font-size:13px;color:#888;">We can walk you through your results and discuss next steps.</p>
            </td></tr>
          </table>
        </td></tr>

        <tr><td style="padding:32px 0 0;" align="center">
          <p style="margin:0;font-size:12px;color:#999;">
            <a href="https://envrt.com" style="color:#1a7a6d;text-decoration:none;">envrt.com</a>
            &nbsp;&middot;&nbsp;
            <a href="https://envrt.com/insights" style="color:#1a7a6d;text-decoration:none;">Insights</a>
            &nbsp;&middot;&nbsp;
            <a href="https://envrt.com/privacy" style="color:#1a7a6d;text-decoration:none;">Privacy</a>
          </p>
          <p style="margin:8px 0 0;font-size:11px;color:#bbb;">This email was sent because you completed the ENVRT DPP Readiness Assessment.</p>
        </td></tr>

      </table>
    </td></tr>
  </table>
</body>
</html>`

const roiEmailHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width,initial-scale=1.0"></head>
<body style="margin:0;padding:0;background:#f5f5f0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background:#f5f5f0;">
    <tr><td align="center" style="padding:40px 16px;">
      <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;width:100%;">

        <tr><td style="padding:0 0 32px;">
          <img src="https://envrt.com/brand/envrt-logo.png" alt="ENVRT" height="32" style="height:32px;width:auto;">
        </td></tr>

        <tr><td style="background:#ffffff;border-radius:16px;overflow:hidden;">
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
            <tr><td style="background:#1b3a2d;padding:32px 32px 28px;" align="center">
              <p style="margin:0 0 4px;font-size:13px;text-transform:uppercase;letter-spacing:1.5px;color:#1a7a6d;font-weight:600;">Your Estimated Annual Saving</p>
              <p style="margin:0;font-size:56px;font-weight:700;color:#ffffff;line-height:1.1;">{{gbp .MaxSaving}}</p>
              <p style="margin:12px 0 0;font-size:14px;color:#a0a0a0;">by switching to ENVRT</p>
            </td></tr>

            <tr><td style="padding:28px 32px 0;">
              <p style="margin:0 0 16px;font-size:13px;text-transform:uppercase;letter-spacing:1px;color:#1a7a6d;font-weight:600;">Annual Cost Comparison</p>
              <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
                <tr>
                  <td style="padding:8px 0;font-size:14px;color:#1b3a2d;width:100px;">ENVRT</td>
                  <td style="padding:8px 0;">
                    <div style="background:#f0f0f0;border-radius:8px;height:12px;width:100%;">
                      <div style="background:#1a7a6d;border-radius:8px;height:12px;width:{{printf "%.0f" .EnvrtPct}}%;"></div>
                    </div>
                  </td>
                  <td style="padding:8px 0 8px 12px;font-size:14px;font-weight:600;color:#1b3a2d;text-align:right;white-space:nowrap;">{{gbp .EnvrtCost}}/yr</td>
                </tr>
                <tr>
                  <td style="padding:8px 0;font-size:14px;color:#1b3a2d;width:100px;">Consultant</td>
                  <td style="padding:8px 0;">
                    <div style="background:#f0f0f0;border-radius:8px;height:12px;width:100%;">
                      <div style="background:#999;border-radius:8px;height:12px;width:{{printf "%.0f" .ConsultPct}}%;"></div>
                    </div>
                  </td>
                  <td style="padding:8px 0 8px 12px;font-size:14px;font-weight:600;color:#1b3a2d;text-align:right;white-space:nowrap;">{{gbp .ConsultantCost}}/yr</td>
                </tr>
                <tr>
                  <td style="padding:8px 0;font-size:14px;color:#1b3a2d;width:100px;">In-house</td>
                  <td style="padding:8px 0;">
                    <div style="background:#f0f0f0;border-radius:8px;height:12px;width:100%;">
                      <div style="background:#555;border-radius:8px;height:12px;width:{{printf "%.0f" .InhousePct}}%;"></div>
                    </div>
                  </td>
                  <td style="padding:8px 0 8px 12px;font-size:14px;font-weight:600;color:#1b3a2d;text-align:right;white-space:nowrap;">{{gbp .InhouseCost}}/yr</td>
                </tr>
              </table>
            </td></tr>

            <tr><td style="padding:24px 32px 0;">
              <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
                <tr>
                  <td style="background:#f5f5f0;border-radius:12px;padding:20px;width:50%;" align="center">
                    <p style="margin:0;font-size:28px;font-weight:700;color:#1a7a6d;">{{.HoursSaved}}h</p>
                    <p style="margin:4px 0 0;font-size:13px;color:#666;">saved per year</p>
                  </td>
                  <td style="width:12px;"></td>
                  <td style="background:#f5f5f0;border-radius:12px;padding:20px;width:50%;" align="center">
                    <p style="margin:0;font-size:28px;font-weight:700;color:#1a7a6d;">{{.EnvrtPlan}}</p>
                    <p style="margin:4px 0 0;font-size:13px;color:#666;">{{.EnvrtPlanPrice}}</p>
                  </td>
                </tr>
              </table>
            </td></tr>

            <tr><td style="padding:32px 32px 36px;" align="center">
              <a href="https://envrt.com/contact" style="display:inline-block;background:#1a7a6d;color:#ffffff;font-size:15px;font-weight:600;text-decoration:none;padding:14px 32px;border-radius:12px;">Get in touch</a>
              <p style="margin:16px 0 0;font-size:13px;color:#888;">We can walk you through your results and discuss next steps.</p>
            </td></tr>
          </table>
        </td></tr>

        <tr><td style="padding:32px 0 0;" align="center">
          <p style="margin:0;font-size:12px;color:#999;">
            <a href="https://envrt.com" style="color:#1a7a6d;text-decoration:none;">envrt.com</a>
            &nbsp;&middot;&nbsp;
            <a href="https://envrt.com/pricing" style="color:#1a7a6d;text-decoration:none;">Pricing</a>
            &nbsp;&middot;&nbsp;
            <a href="https://envrt.com/privacy" style="color:#1a7a6d;text-decoration:none;">Privacy</a>
          </p>
          <p style="margin:8px 0 0;font-size:11px;color:#bbb;">This email was sent because you completed the ENVRT ROI Calculator.</p>
        </td></tr>

      </table>
    </td></tr>
  </table>
</body>
</html>`

const roiInternalHTML = `<div style="font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;max-width:600px;">
  <h2 style="color:#1b3a2d;margin:0 0 16px;">New ROI Calculator Lead</h2>
  <table style="border-collapse:collapse;width:100%;margin-bottom:20px;">
    <tr><td style="padding:6px 12px;color:#666;">Name</td><td style="padding:6px 12px;font-weight:600;">{{.FirstName}}</td></tr>
    <tr><td style="padding:6px 12px;color:#666;">Brand</td><td style="padding:6px 12px;font-weight:600;">{{.BrandName}}</td></tr>
    <tr><td style="padding:6px 12px;color:#666;">Email</td><td style="padding:6px 12px;font-weight:600;"><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
    <tr><td style="padding:6px 12px;color:#666;">Marketing consent</td><td style="padding:6px 12px;font-weight:600;">{{if .MarketingConsent}}Yes{{else}}No{{end}}</td></tr>
  </table>
  <h3 style="color:#1b3a2d;margin:0 0 8px;">Calculator Inputs</h3>
  <table style="border-collapse:collapse;width:100%;margin-bottom:16px;">
    <tr><td style="padding:6px 12px;color:#666;">Products</td><td style="padding:6px 12px;font-weight:600;">{{.SkuCount}}</td></tr>
    <tr><td style="padding:6px 12px;color:#666;">Hours/product</td><td style="padding:6px 12px;font-weight:600;">{{.HoursPerProduct}}h</td></tr>
    <tr><td style="padding:6px 12px;color:#666;">Markets</td><td style="padding:6px 12px;font-weight:600;">{{.Market}}</td></tr>
    <tr><td style="padding:6px 12px;color:#666;">Current approach</td><td style="padding:6px 12px;font-weight:600;">{{.Approach}}</td></tr>
    <tr><td style="padding:6px 12px;color:#666;">Team size</td><td style="padding:6px 12px;font-weight:600;">{{.TeamSize}}</td></tr>
  </table>
  <h3 style="color:#1b3a2d;margin:0 0 8px;">Results</h3>
  <table style="border-collapse:collapse;width:100%;margin-bottom:16px;">
    <tr><td style="padding:6px 12px;color:#666;">ENVRT cost</td><td style="padding:6px 12px;font-weight:600;">{{gbp .EnvrtCost}}/yr ({{.EnvrtPlan}})</td></tr>
    <tr><td style="padding:6px 12px;color:#666;">Consultant cost</td><td style="padding:6px 12px;font-weight:600;">{{gbp .ConsultantCost}}/yr</td></tr>
    <tr><td style="padding:6px 12px;color:#666;">In-house cost</td><td style="padding:6px 12px;font-weight:600;">{{gbp .InhouseCost}}/yr</td></tr>
    <tr><td style="padding:6px 12px;color:#666;">Max saving</td><td style="padding:6px 12px;font-weight:600;color:#1a7a6d;">{{gbp .MaxSaving}}/yr</td></tr>
    <tr><td style="padding:6px 12px;color:#666;">Time saved</td><td style="padding:6px 12px;font-weight:600;">{{.HoursSaved}}h ({{.DaysSaved}} days)</td></tr>
  </table>
  <p style="font-size:13px;color:#888;margin-top:24px;">Sent from the ROI Calculator at envrt.com/roi</p>
</div>`

const contactInternalHTML = `<div style="font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;max-width:600px;">
  <h2 style="color:#1b3a2d;margin:0 0 16px;">New Contact Form Lead</h2>
  <table style="border-collapse:collapse;width:100%;margin-bottom:20px;">
    <tr><td style="padding:6px 12px;color:#666;">Name</td><td style="padding:6px 12px;font-weight:600;">{{.FirstName}}</td></tr>
    <tr><td style="padding:6px 12px;color:#666;">Brand</td><td style="padding:6px 12px;font-weight:600;">{{.BrandName}}</td></tr>
    <tr><td style="padding:6px 12px;color:#666;">Email</td><td style="padding:6px 12px;font-weight:600;"><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
    <tr><td style="padding:6px 12px;color:#666;">Marketing consent</td><td style="padding:6px 12px;font-weight:600;">{{if .MarketingConsent}}Yes{{else}}No{{end}}</td></tr>
  </table>
  <h3 style="color:#1b3a2d;margin:0 0 8px;">Message</h3>
  <p style="padding:6px 12px;color:#1b3a2d;line-height:1.6;">{{.Message}}</p>
  <p style="font-size:13px;color:#888;margin-top:24px;">Sent from the contact form at envrt.com/contact</p>
</div>`
