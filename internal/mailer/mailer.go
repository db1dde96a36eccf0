package mailer

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

var ErrUnsupportedMailType = errors.New("不支持的邮件类型")

type mailTemplate struct {
	file    string
	subject string
}

var mailTemplates = map[string]mailTemplate{
	domain.MailTypeVacationRequested: {
		file:    "vacation_requested_email.html",
		subject: "请假系统 - 新的请假申请",
	},
	domain.MailTypeVacationStatusChanged: {
		file:    "vacation_status_changed_email.html",
		subject: "请假系统 - 请假申请状态更新",
	},
}

// Composer 把消息队列中的邮件信息渲染成可以发送的邮件
type Composer struct {
	from        string
	templateDir string
}

func NewComposer(from string, templateDir string) *Composer {
	return &Composer{
		from:        from,
		templateDir: templateDir,
	}
}

func (c *Composer) Compose(body []byte) (*mail.Msg, error) {
	// 对邮件信息反序列化，Data 会被解析成 map，模板中用 JSON 字段名访问
	mailMessage := domain.MailMessage{}
	if err := json.Unmarshal(body, &mailMessage); err != nil {
		return nil, fmt.Errorf("邮件信息反序列化失败: %w", err)
	}

	mt, ok := mailTemplates[mailMessage.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMailType, mailMessage.Type)
	}

	msg := mail.NewMsg()
	if err := msg.From(c.from); err != nil {
		return nil, fmt.Errorf("无法设置邮件发件人: %w", err)
	}
	if err := msg.To(mailMessage.To); err != nil {
		return nil, fmt.Errorf("无法设置邮件收件人: %w", err)
	}

	tmpl, err := template.ParseFiles(filepath.Join(c.templateDir, mt.file))
	if err != nil {
		return nil, fmt.Errorf("无法解析邮件模板: %w", err)
	}
	if err := msg.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
		return nil, fmt.Errorf("无法设置邮件正文: %w", err)
	}
	msg.Subject(mt.subject)

	return msg, nil
}
