package controllers

// Static pages rendered to the customer's browser after Stripe redirects
// back. They carry no payment state on purpose: the conversation flow in
// WhatsApp is the source of truth and these tabs are expected to be closed.
const paymentSuccessPage = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Pago recibido</title>
<style>
body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; background: #f4f7f6; display: flex; align-items: center; justify-content: center; height: 100vh; margin: 0; }
.card { background: #fff; border-radius: 12px; box-shadow: 0 4px 16px rgba(0,0,0,.08); padding: 48px 40px; max-width: 420px; text-align: center; }
.icon { font-size: 56px; }
h1 { color: #1f7a4d; font-size: 24px; margin: 16px 0 8px; }
p { color: #555; line-height: 1.5; }
</style>
</head>
<body>
<div class="card">
<div class="icon">&#9989;</div>
<h1>&iexcl;Pago recibido!</h1>
<p>Estamos confirmando tu cita. Recibir&aacute;s los detalles por WhatsApp en unos momentos.</p>
<p>Ya puedes cerrar esta ventana.</p>
</div>
</body>
</html>`

const paymentCancelPage = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Pago cancelado</title>
<style>
body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; background: #f4f7f6; display: flex; align-items: center; justify-content: center; height: 100vh; margin: 0; }
.card { background: #fff; border-radius: 12px; box-shadow: 0 4px 16px rgba(0,0,0,.08); padding: 48px 40px; max-width: 420px; text-align: center; }
.icon { font-size: 56px; }
h1 { color: #b3541e; font-size: 24px; margin: 16px 0 8px; }
p { color: #555; line-height: 1.5; }
</style>
</head>
<body>
<div class="card">
<div class="icon">&#10060;</div>
<h1>Pago cancelado</h1>
<p>No se realiz&oacute; ning&uacute;n cargo. Si quieres intentarlo de nuevo, escr&iacute;benos por WhatsApp.</p>
<p>Ya puedes cerrar esta ventana.</p>
</div>
</body>
</html>`
