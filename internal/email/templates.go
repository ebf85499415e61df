package email

const contactNotificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Nova mensagem de contato</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background-color: #0a0a0f; color: #f5f5f5; padding: 40px; }
        .container { max-width: 600px; margin: 0 auto; background: #14141e; border-radius: 16px; padding: 40px; border: 1px solid rgba(255, 255, 255, 0.1); }
        h1 { color: #f5a623; margin-bottom: 24px; font-size: 24px; }
        .field { margin-bottom: 20px; }
        .label { color: #888; font-size: 12px; text-transform: uppercase; letter-spacing: 1px; margin-bottom: 8px; }
        .value { color: #f5f5f5; font-size: 16px; line-height: 1.6; }
        .message-box { background: rgba(245, 166, 35, 0.1); border-left: 3px solid #f5a623; padding: 16px; border-radius: 8px; margin-top: 24px; }
        .footer { margin-top: 32px; padding-top: 24px; border-top: 1px solid rgba(255, 255, 255, 0.1); color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Nova Mensagem de Contato</h1>

        <div class="field">
            <div class="label">Nome</div>
            <div class="value">{{.Name}}</div>
        </div>

        <div class="field">
            <div class="label">Email</div>
            <div class="value"><a href="mailto:{{.Email}}" style="color: #f5a623;">{{.Email}}</a></div>
        </div>

        <div class="message-box">
            <div class="label">Mensagem</div>
            <div class="value">{{.Message}}</div>
        </div>

        <div class="footer">
            Enviado através do formulário de contato do portfólio
        </div>
    </div>
</body>
</html>`

const contactConfirmationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Mensagem recebida</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background-color: #0a0a0f; color: #f5f5f5; padding: 40px; }
        .container { max-width: 600px; margin: 0 auto; background: #14141e; border-radius: 16px; padding: 40px; border: 1px solid rgba(255, 255, 255, 0.1); }
        h1 { color: #f5a623; margin-bottom: 16px; font-size: 28px; }
        p { color: #ccc; line-height: 1.8; margin-bottom: 16px; }
        .highlight { color: #f5a623; font-weight: 600; }
        .signature { margin-top: 32px; padding-top: 24px; border-top: 1px solid rgba(255, 255, 255, 0.1); }
        .name { font-size: 18px; font-weight: 600; color: #f5f5f5; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Olá, {{.Name}}!</h1>

        <p>Obrigado por entrar em contato! Recebi sua mensagem e estou muito feliz pelo seu interesse.</p>

        <p>Vou analisar sua mensagem com atenção e retornarei o mais breve possível — geralmente em até <span class="highlight">24 horas úteis</span>.</p>

        <p>Enquanto isso, fique à vontade para explorar meus projetos ou conectar-se comigo nas redes sociais.</p>

        <div class="signature">
            <div class="name">Francisco Douglas</div>
        </div>
    </div>
</body>
</html>`

const passwordResetEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Redefina sua senha</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .button { display: inline-block; padding: 12px 24px; background: #f5a623; color: white; text-decoration: none; border-radius: 4px; margin: 20px 0; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #666; }
        .link { word-break: break-all; color: #f5a623; }
    </style>
</head>
<body>
    <h2>Redefinição de senha</h2>

    <p>Olá, {{.UserName}},</p>

    <p>Recebemos um pedido para redefinir sua senha. Clique no botão abaixo para criar uma nova senha:</p>

    <p>
        <a href="{{.ResetURL}}" class="button">Redefinir senha</a>
    </p>

    <p>Ou copie e cole este link no seu navegador:</p>
    <p class="link">{{.ResetURL}}</p>

    <p><strong>Importante:</strong> este link expira em 1 hora.</p>

    <div class="footer">
        <p>Se você não pediu a redefinição, ignore este email. Sua senha permanecerá a mesma.</p>
    </div>
</body>
</html>`
